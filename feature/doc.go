// Package feature converts relational cocktail records into labeled numeric
// matrices ready for normalization, clustering and embedding.
//
// The feature package provides:
//
//   - BuildVolumeMatrix: compositions → cocktail×ingredient volume frame
//     (missing volumes become a small epsilon, absent pairs are 0).
//   - PrimaryAlcoholTypes: per-cocktail label of the alcoholic ingredient
//     with the largest volume (documented stable tie-break).
//   - StyleEncoder / BuildStyleMatrix: one-hot encoding of the categorical
//     cocktail attributes glass, prep_method and strength, with unknown
//     levels at transform time encoded as all-zero.
//
// Join policy: lookups between compositions and ingredients use inner-join
// semantics — rows without a partner are dropped silently, never errored.
// This preserves the upstream data contract and is asserted by tests; treat
// it as potential silent data loss when preparing inputs.
package feature
