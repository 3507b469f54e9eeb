// Package versioning implements the reconciliation engine behind the
// versioned document store.
//
// Documents are three-level trees: a root record owns a set of branch
// records, each of which owns a set of leaf records. Every update submits
// the full tree; the engine compares it against the latest persisted
// version and produces a new immutable version that shares every
// unchanged branch and leaf with history instead of duplicating it.
//
// # Reconcilers
//
// The engine is generic over the concrete record types. A document kind
// plugs in via two small bindings:
//
//   - LeafBinding: content equality and materialization for leaves.
//   - BranchBinding: the same for branches, plus access to the owned
//     leaf collection.
//
// Reconciliation composes bottom-up: ReconcileLeaves resolves one
// branch's leaf set, ReconcileBranch aggregates it with the branch's
// own content verdict, and ReconcileBranchSet walks the whole submitted
// collection. A record is reused only when it correlates by identity
// with a prior record AND every comparable field matches; a value match
// without an identity match still creates a new record.
//
// # Error model
//
// The reconcilers themselves never fail: when equivalence cannot be
// determined they fall toward materializing a new record, so a change is
// never silently lost. Only the persistence step of a write can fail,
// and those failures are classified into ErrValidation, ErrConflict and
// ErrStorage for the caller.
package versioning
