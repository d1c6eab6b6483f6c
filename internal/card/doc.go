// Package card holds the word-pair domain data: the immutable store of
// French/English pairs loaded from CSV at startup, and the selection
// policies that pick which pair to show next. Everything in this package
// is side-effect free apart from the CSV loader and the injected random
// source consumed by the policies.
package card
