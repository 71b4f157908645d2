// Package convert provides URDF to SDF converters for the models package.
// Gazebo shells out to the simulator's command-line tool (`gz sdf -p` or the
// older `ign sdf -p`); Lookup selects the first tool found on PATH.
package convert
