// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

// stopWords holds function words and generic research vocabulary that carry
// no topical signal in titles and abstracts. Words shorter than four letters
// never reach the lookup.
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"also": true, "among": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "could": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "even": true,
	"from": true, "further": true, "have": true, "having": true, "here": true,
	"into": true, "itself": true, "just": true, "many": true, "more": true,
	"most": true, "much": true, "must": true, "only": true, "other": true,
	"over": true, "same": true, "should": true, "show": true, "shows": true,
	"some": true, "such": true, "than": true, "that": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "under": true, "until": true,
	"upon": true, "very": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "will": true, "with": true,
	"within": true, "without": true, "would": true, "your": true, "using": true,
	"based": true, "towards": true, "toward": true, "across": true,
	"paper": true, "propose": true, "proposed": true, "approach": true,
	"method": true, "methods": true, "results": true, "study": true,
	"novel": true, "work": true, "present": true, "however": true,
}

// IsStopWord reports whether w (lowercase) is excluded from keyword counts.
func IsStopWord(w string) bool { return stopWords[w] }
