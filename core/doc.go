// Package core contains the canonical etsyAccess domain values, contracts,
// and configuration. Higher-level packages (oauth1, transport, etsy) depend
// on core; core must not depend on any other package in this module.
package core
