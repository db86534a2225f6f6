package extract

import "strings"

// Articles, pronouns, auxiliaries, common prepositions and conjunctions, and
// the contractions that show up most in lyrics. Entries are canonical forms.
const stopWordList = `
a an the
i me my mine myself you your yours yourself he him his himself she her hers
herself it its itself we us our ours ourselves they them their theirs
themselves this that these those who whom whose which what
am is are was were be been being have has had having do does did doing
will would shall should can could may might must
in on at to of for from by with about into onto over under up down out off
through between after before as than like
and or but nor so if because while though although yet
not no all any some
i'm you're he's she's it's we're they're i've you've we've they've i'll
you'll he'll she'll we'll they'll i'd you'd he'd she'd we'd they'd
don't doesn't didn't can't won't isn't aren't wasn't weren't ain't let's
that's there's what's
`

// DefaultStopWords returns a fresh copy of the built-in stop-word set.
func DefaultStopWords() map[string]struct{} {
	words := strings.Fields(stopWordList)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
