// Package config manages user-level settings stored at ~/.robot-models/config.yaml.
// Every key can also be supplied through a ROBOT_MODELS_<KEY> environment
// variable, which takes precedence over the file.
package config
