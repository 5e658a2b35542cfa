// Package logging provides the process-wide logging subsystem for snowkit.
//
// Loggers are obtained from a registry of named handles. A handle owns a set
// of output sinks (console, file) and a minimum severity level; reconfiguring
// a handle replaces its sink set wholesale, so repeated GetLogger calls never
// accumulate duplicate sinks. Handles are independent of each other: a named
// handle never forwards records to the root handle.
//
// Configuration is layered, highest priority first:
//  1. Functional options passed to GetLogger / InitializeRootLogger
//  2. The tier selected by the ENV environment variable in config/config.yaml
//  3. The "default" tier of the same file
//
// The configuration file lives at <project root>/config/config.yaml, where
// the project root is the nearest ancestor directory containing a
// .projectroot marker. SNOWKIT_CONFIG overrides the file location.
//
// Example:
//
//	if err := logging.InitializeRootLogger(); err != nil {
//	    return err
//	}
//	log, err := logging.GetLogger("warehouse")
//	if err != nil {
//	    return err
//	}
//	log.Info("connected", map[string]interface{}{"dialect": "sqlite"})
package logging
