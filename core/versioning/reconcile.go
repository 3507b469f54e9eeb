package versioning

// Node is implemented by branch and leaf records taking part in
// reconciliation. Key is the correlation identity used to match a
// submitted record with its counterpart in the latest persisted version.
// Records that were never persisted carry a zero key.
type Node interface {
	Key() uint
}

// LeafBinding adapts one concrete leaf type to the reconciler.
type LeafBinding[L Node] interface {
	// LeafEqual reports whether every comparable field of the two
	// leaves holds the same value. Identity is not part of the
	// comparison.
	LeafEqual(submitted, prior L) bool

	// NewLeaf materializes a fresh leaf from the submitted values,
	// discarding the submitted identity so the store assigns a new one.
	NewLeaf(submitted L) L
}

// BranchBinding adapts one concrete branch type to the reconciler.
// It embeds the binding for the leaf type the branch owns.
type BranchBinding[B Node, L Node] interface {
	LeafBinding[L]

	// Leaves returns the branch's owned leaf collection. A nil slice
	// means the collection is absent, which is distinct from empty.
	Leaves(branch B) []L

	// BranchEqual reports whether every comparable content field of the
	// two branches holds the same value. The leaf collections are
	// compared separately by the reconciler.
	BranchEqual(submitted, prior B) bool

	// NewBranch materializes a fresh branch from the submitted content
	// fields and the resolved leaf collection.
	NewBranch(submitted B, leaves []L) B
}

// ReconcileLeaves resolves the submitted leaf set of one branch against
// the leaf set of the branch's latest persisted version. Each submitted
// leaf is either the reused prior instance (identity match and all
// fields equal) or a freshly materialized one. The returned flag is true
// when the leaf set changed: any leaf is new or modified, or the leaf
// counts differ, which covers deletions.
func ReconcileLeaves[L Node](b LeafBinding[L], submitted, prior []L) ([]L, bool) {
	if submitted == nil {
		// Absent collection; nil-ness against the prior version is
		// judged by the branch reconciler.
		return nil, len(prior) > 0
	}

	changed := len(submitted) != len(prior)

	resolved := make([]L, 0, len(submitted))
	for _, sub := range submitted {
		reused := false
		if sub.Key() != 0 {
			for _, pri := range prior {
				if pri.Key() == sub.Key() {
					if b.LeafEqual(sub, pri) {
						resolved = append(resolved, pri)
						reused = true
					}
					break
				}
			}
		}
		if !reused {
			resolved = append(resolved, b.NewLeaf(sub))
			changed = true
		}
	}

	return resolved, changed
}

// ReconcileBranch resolves one submitted branch against the latest
// version's branch collection. When an identity-matched prior branch
// exists and neither its content fields nor its leaf set changed, the
// prior instance itself is returned so the new version references the
// already persisted record. Otherwise a new branch is materialized,
// reusing every unchanged leaf.
func ReconcileBranch[B Node, L Node](b BranchBinding[B, L], submitted B, prior []B) (B, bool) {
	var latest B
	found := false
	if submitted.Key() != 0 {
		for _, pri := range prior {
			if pri.Key() == submitted.Key() {
				latest = pri
				found = true
				break
			}
		}
	}

	if !found {
		// Wholly new branch: every leaf is new as well.
		leaves, _ := ReconcileLeaves(b, b.Leaves(submitted), nil)
		return b.NewBranch(submitted, leaves), true
	}

	subLeaves := b.Leaves(submitted)
	priLeaves := b.Leaves(latest)

	leaves, leavesChanged := ReconcileLeaves(b, subLeaves, priLeaves)

	changed := !b.BranchEqual(submitted, latest) ||
		leavesChanged ||
		(subLeaves == nil) != (priLeaves == nil)

	if !changed {
		return latest, false
	}
	return b.NewBranch(submitted, leaves), true
}

// ReconcileBranchSet resolves the full submitted branch collection
// against the latest version's collection. Branches present in the
// prior version but absent from the submission are dropped, not carried
// forward. A nil submitted collection stays nil.
func ReconcileBranchSet[B Node, L Node](b BranchBinding[B, L], submitted, prior []B) []B {
	if submitted == nil {
		return nil
	}

	resolved := make([]B, 0, len(submitted))
	for _, sub := range submitted {
		branch, _ := ReconcileBranch(b, sub, prior)
		resolved = append(resolved, branch)
	}
	return resolved
}
