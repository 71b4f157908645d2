// Package manifest handles parsing and validation of robot.yaml, the optional
// metadata file that sits next to a robot's description file. It provides JSON
// Schema validation against the embedded schema/robot.schema.json and
// semantic-version helpers for the version field.
package manifest
