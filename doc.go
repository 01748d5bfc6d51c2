// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package spell provides fast approximate spelling correction for single
// tokens and for whitespace-damaged, noisily misspelled running text.
//
// The core is a symmetric-delete index: every dictionary term is indexed
// under the set of strings reachable by deleting up to k characters from
// its leading prefix, so correcting an input token becomes a handful of
// O(1) map probes instead of a scan over the whole vocabulary. Candidates
// pulled from the index are verified with an optimal-string-alignment
// edit distance and ranked by distance, then frequency.
//
// Lookup corrects a single token. LookupCompound tokenizes a phrase,
// corrects each token, and considers joining adjacent tokens when that
// produces a better-scoring dictionary match than correcting them apart —
// this is what lets it repair missing and spurious spaces in running
// text, not just misspelled words.
package spell
