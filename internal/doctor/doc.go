// Package doctor runs health checks over an installation root: the root and
// mesh-bearing directories exist, every robot resolves to exactly one
// description file, robot.yaml manifests validate, and a converter is present.
package doctor
