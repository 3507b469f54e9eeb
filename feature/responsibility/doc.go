// Package responsibility manages the responsibility document of the
// IMS: who holds which responsibilities in the process, organized as a
// versioned tree of groups and their interfaces.
//
// Versioning works exactly like the governance document: writes append
// complete immutable versions, and unchanged group and interface rows
// are shared between consecutive versions through junction tables.
package responsibility
