// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package party

// sample pools for generated counterparties

var givenNames = []string{
	"Ada", "Alonzo", "Barbara", "Claude", "Donald", "Edith", "Edsger",
	"Frances", "Grace", "Hedy", "John", "Katherine", "Ken", "Leslie",
	"Margaret", "Maurice", "Niklaus", "Radia", "Robin", "Tony",
}

var familyNames = []string{
	"Allen", "Church", "Cray", "Dijkstra", "Hamilton", "Hopper",
	"Kahn", "Knuth", "Lamarr", "Lamport", "Liskov", "Lovelace",
	"McCarthy", "Milner", "Perlman", "Ritchie", "Shannon", "Thompson",
	"Wilkes", "Wirth",
}

var streetNames = []string{
	"Mill Lane", "Harbour Road", "Foundry Street", "Orchard Way",
	"Station Approach", "Castle Hill", "Riverside Walk", "Market Square",
}

var townNames = []string{
	"Falmouth", "Kendal", "Ludlow", "Oakham", "Pitlochry", "Stroud",
	"Thirsk", "Whitby",
}
