package lexicon

// Curated word classes for the coarse tagger. The noun list started from
// the nature vocabulary the training data covers and grew from there;
// anything outside these lists falls through to the suffix rules.

var stopwords = wordSet(
	"a", "an", "the", "and", "or", "but", "nor", "so", "yet",
	"i", "me", "my", "mine", "we", "us", "our", "ours",
	"you", "your", "yours", "he", "him", "his", "she", "her", "hers",
	"it", "its", "they", "them", "their", "theirs",
	"this", "that", "these", "those", "which", "who", "whom", "whose",
	"what", "when", "where", "why", "how",
	"is", "am", "are", "was", "were", "be", "been", "being",
	"do", "does", "did", "have", "has", "had",
	"will", "would", "shall", "should", "can", "could", "may", "might", "must",
	"in", "on", "at", "to", "of", "for", "from", "with", "without",
	"by", "about", "above", "below", "under", "over", "through",
	"into", "onto", "upon", "between", "among", "as", "if", "then",
	"than", "too", "very", "not", "no", "all", "each", "every",
	"some", "any", "own", "there", "here", "now", "once",
)

var nouns = wordSet(
	"forest", "mountain", "bird", "sea", "tree", "sky", "sun", "moon",
	"star", "river", "lake", "flower", "stone", "wind", "fire", "earth",
	"wolf", "deer", "eagle", "lion", "bear", "snake", "fish", "horse",
	"cat", "dog", "garden", "night", "day", "light", "shadow", "rain",
	"snow", "heart", "soul", "dream", "road", "house", "city", "field",
	"valley", "wood", "leaf", "branch", "cloud", "storm", "wave", "shore",
	"sand", "path", "door", "window", "hill", "grass", "ice", "mist",
	"dawn", "dusk", "winter", "summer", "autumn", "spring", "child",
	"man", "woman", "king", "queen", "song", "word", "voice", "silence",
	"poem", "water", "sailor", "sails", "boat", "ship",
)

var verbs = wordSet(
	"sing", "sings", "sang", "run", "runs", "ran", "see", "sees", "saw",
	"sit", "sits", "sat",
	"hunt", "hunts", "howl", "howls", "fly", "flies", "flew", "build",
	"builds", "built", "tower", "towers", "hold", "holds", "held",
	"love", "loves", "seek", "seeks", "sought", "create", "creates",
	"walk", "walks", "fall", "falls", "fell", "rise", "rises", "rose",
	"burn", "burns", "grow", "grows", "grew", "break", "breaks", "broke",
	"speak", "speaks", "spoke", "whisper", "whispers", "drift", "drifts",
	"devour", "devours", "shelter", "shelters", "call", "calls", "go",
	"goes", "went", "come", "comes", "came", "know", "knows", "knew",
)

var adjectives = wordSet(
	"dark", "ancient", "mysterious", "green", "dense", "towering",
	"rugged", "majestic", "distant", "vast", "turbulent", "azure",
	"endless", "foaming", "soaring", "melodious", "swift", "graceful",
	"colorful", "beautiful", "strange", "wonderful", "terrible",
	"sublime", "old", "young", "cold", "warm", "bright", "quiet",
	"soft", "wild", "deep", "high", "long", "short", "pale", "golden",
	"silver", "silent", "empty", "lonely", "gentle", "cruel",
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
