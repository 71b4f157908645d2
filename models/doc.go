// Package models locates packaged robot description files and hands them to
// callers as a path, an open file, or in-memory text, in either URDF or SDF.
//
// An installation root holds one directory per robot. Each robot directory
// contains, somewhere in its tree, exactly one description file ending in
// ".urdf" or ".sdf", plus auxiliary files (meshes, model.config, robot.yaml)
// that the locator never inspects.
//
// # Conversion
//
// URDF-stored robots can be requested as SDF when a Converter is configured
// with WithConverter. The reverse direction is never supported. Converted
// results that must live on disk are written to temporary files:
//
//   - ModelPath returns a *PathResource. When Temporary reports true the
//     caller owns the file and must call Remove.
//   - ModelFile returns a *ScopedFile. Closing it removes its temporary
//     backing file, if any.
//
// # Simulator environment
//
// ConfigureEnvironment appends the installation root and the mesh-bearing
// robot directories to the simulator resource path variable
// (IGN_GAZEBO_RESOURCE_PATH by default). It is never run implicitly; call it
// once during program startup. Calling it twice duplicates entries.
//
// # Thread Safety
//
// A *Locator is immutable after New and may be shared between goroutines.
// ConfigureEnvironment mutates the process environment and is the exception.
package models
