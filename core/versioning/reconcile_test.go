package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testLeaf and testBranch are minimal records for exercising the
// reconcilers without pulling in a database layer.
type testLeaf struct {
	ID      uint
	Tag     *string
	Comment *string
}

func (l testLeaf) Key() uint { return l.ID }

type testBranch struct {
	ID     uint
	Body   *string
	Leaves []testLeaf
}

func (b testBranch) Key() uint { return b.ID }

type testBinding struct{}

func (testBinding) LeafEqual(s, p testLeaf) bool {
	return EqualStrings(s.Tag, p.Tag) && EqualStrings(s.Comment, p.Comment)
}

func (testBinding) NewLeaf(s testLeaf) testLeaf {
	return testLeaf{Tag: s.Tag, Comment: s.Comment}
}

func (testBinding) Leaves(b testBranch) []testLeaf { return b.Leaves }

func (testBinding) BranchEqual(s, p testBranch) bool {
	return EqualStrings(s.Body, p.Body)
}

func (testBinding) NewBranch(s testBranch, leaves []testLeaf) testBranch {
	return testBranch{Body: s.Body, Leaves: leaves}
}

func leaf(id uint, tag, comment string) testLeaf {
	return testLeaf{ID: id, Tag: &tag, Comment: &comment}
}

func TestReconcileLeaves_AllUnchanged(t *testing.T) {
	prior := []testLeaf{leaf(1, "Internal", "x"), leaf(2, "External", "y")}
	submitted := []testLeaf{leaf(1, "Internal", "x"), leaf(2, "External", "y")}

	resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, submitted, prior)

	assert.False(t, changed)
	assert.Len(t, resolved, 2)
	// Reused instances keep their persisted identity.
	assert.Equal(t, uint(1), resolved[0].ID)
	assert.Equal(t, uint(2), resolved[1].ID)
}

func TestReconcileLeaves_OneEdited(t *testing.T) {
	prior := []testLeaf{leaf(1, "Internal", "x"), leaf(2, "External", "y")}
	submitted := []testLeaf{leaf(1, "Internal", "x2"), leaf(2, "External", "y")}

	resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Len(t, resolved, 2)
	// The edited leaf is materialized fresh, the sibling is reused.
	assert.Zero(t, resolved[0].ID)
	assert.Equal(t, "x2", *resolved[0].Comment)
	assert.Equal(t, uint(2), resolved[1].ID)
}

func TestReconcileLeaves_NewLeafWithoutIdentity(t *testing.T) {
	prior := []testLeaf{leaf(1, "Internal", "x")}
	submitted := []testLeaf{leaf(1, "Internal", "x"), {Tag: StringPtr("Customer"), Comment: StringPtr("z")}}

	resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Len(t, resolved, 2)
	assert.Equal(t, uint(1), resolved[0].ID)
	assert.Zero(t, resolved[1].ID)
}

func TestReconcileLeaves_ValueMatchWithoutIdentityCreatesNew(t *testing.T) {
	// A submitted leaf whose fields coincide with a prior leaf but whose
	// identity does not match must still become a new record.
	prior := []testLeaf{leaf(7, "Internal", "x")}
	submitted := []testLeaf{leaf(99, "Internal", "x")}

	resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Zero(t, resolved[0].ID)
}

func TestReconcileLeaves_DeletionDetectedByCount(t *testing.T) {
	prior := []testLeaf{leaf(1, "Internal", "x"), leaf(2, "External", "y")}
	submitted := []testLeaf{leaf(1, "Internal", "x")}

	resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Len(t, resolved, 1)
	assert.Equal(t, uint(1), resolved[0].ID)
}

func TestReconcileLeaves_AbsentSubmission(t *testing.T) {
	t.Run("Prior had leaves", func(t *testing.T) {
		prior := []testLeaf{leaf(1, "Internal", "x")}
		resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, nil, prior)
		assert.True(t, changed)
		assert.Nil(t, resolved)
	})

	t.Run("Prior empty too", func(t *testing.T) {
		resolved, changed := ReconcileLeaves[testLeaf](testBinding{}, nil, nil)
		assert.False(t, changed)
		assert.Nil(t, resolved)
	})
}

func TestReconcileBranch_UnchangedReturnsPriorInstance(t *testing.T) {
	prior := []testBranch{{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{leaf(1, "Internal", "x")}}}
	submitted := testBranch{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{leaf(1, "Internal", "x")}}

	resolved, changed := ReconcileBranch[testBranch, testLeaf](testBinding{}, submitted, prior)

	assert.False(t, changed)
	assert.Equal(t, uint(5), resolved.ID)
}

func TestReconcileBranch_ContentChange(t *testing.T) {
	prior := []testBranch{{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{leaf(1, "Internal", "x")}}}
	submitted := testBranch{ID: 5, Body: StringPtr("revised terms"), Leaves: []testLeaf{leaf(1, "Internal", "x")}}

	resolved, changed := ReconcileBranch[testBranch, testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Zero(t, resolved.ID)
	// The untouched leaf is still the reused prior instance.
	assert.Equal(t, uint(1), resolved.Leaves[0].ID)
}

func TestReconcileBranch_LeafEditForcesNewBranch(t *testing.T) {
	prior := []testBranch{{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{leaf(1, "Internal", "x"), leaf(2, "External", "y")}}}
	submitted := testBranch{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{leaf(1, "Internal", "x2"), leaf(2, "External", "y")}}

	resolved, changed := ReconcileBranch[testBranch, testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Zero(t, resolved.ID)
	assert.Zero(t, resolved.Leaves[0].ID)
	assert.Equal(t, uint(2), resolved.Leaves[1].ID)
}

func TestReconcileBranch_LeafSetNilnessMismatch(t *testing.T) {
	prior := []testBranch{{ID: 5, Body: StringPtr("terms"), Leaves: []testLeaf{}}}
	submitted := testBranch{ID: 5, Body: StringPtr("terms")}

	resolved, changed := ReconcileBranch[testBranch, testLeaf](testBinding{}, submitted, prior)

	assert.True(t, changed)
	assert.Zero(t, resolved.ID)
	assert.Nil(t, resolved.Leaves)
}

func TestReconcileBranch_NewBranch(t *testing.T) {
	submitted := testBranch{Body: StringPtr("annex"), Leaves: []testLeaf{{Tag: StringPtr("Customer"), Comment: StringPtr("z")}}}

	resolved, changed := ReconcileBranch[testBranch, testLeaf](testBinding{}, submitted, nil)

	assert.True(t, changed)
	assert.Zero(t, resolved.ID)
	assert.Len(t, resolved.Leaves, 1)
	assert.Zero(t, resolved.Leaves[0].ID)
}

func TestReconcileBranchSet_DropsOmittedBranches(t *testing.T) {
	prior := []testBranch{
		{ID: 5, Body: StringPtr("keep")},
		{ID: 6, Body: StringPtr("drop")},
	}
	submitted := []testBranch{{ID: 5, Body: StringPtr("keep")}}

	resolved := ReconcileBranchSet[testBranch, testLeaf](testBinding{}, submitted, prior)

	assert.Len(t, resolved, 1)
	assert.Equal(t, uint(5), resolved[0].ID)
}

func TestReconcileBranchSet_NilSubmissionStaysNil(t *testing.T) {
	prior := []testBranch{{ID: 5, Body: StringPtr("old")}}
	assert.Nil(t, ReconcileBranchSet[testBranch, testLeaf](testBinding{}, nil, prior))
}
