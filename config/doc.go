// Package config defines the tunables accepted by
// orchestrator.SuperimposeTopologies (spec §6) as a functional-options
// Config, mirroring the builder package's BuilderOption/builderConfig
// shape: New(opts...) applies spec-mandated defaults, then each Option in
// order, later options winning over earlier ones.
package config
