// Package governance manages the governance document of the IMS: a
// versioned tree of the document itself, its annexes, and the interfaces
// of each annex.
//
// Every write appends a complete new version; nothing is ever updated in
// place. Annex and interface rows whose content did not change between
// two versions are shared through junction tables, so the history stays
// cheap to store while every version remains fully reconstructable.
package governance
