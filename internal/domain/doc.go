// Package domain contains the core domain model for the KindleMint
// puzzle validation toolchain.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// JSON/YAML parsing details, PDF libraries, or the filesystem. Infra/adapters
// map into/from these types.
package domain
