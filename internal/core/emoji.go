package core

import "strings"

// emojiPools maps a tone tag to its emoji candidates. Tones outside the
// known set use defaultEmojiPool.
var emojiPools = map[string][]string{
	"friendly": {"😊", "🌟", "🛍️", "💛", "✨", "🎉"},
	"luxury":   {"✨", "👑", "💎", "🖤", "🥂", "🕯️"},
	"tech":     {"⚡", "🤖", "📱", "💡", "🚀", "🔋"},
	"sport":    {"🏃", "💪", "🔥", "⚽", "🏆", "🥇"},
}

var defaultEmojiPool = []string{"✨", "🌟", "🎁", "🛒"}

// EmojiPair picks two emoji for a tone. The pair is distinct whenever the
// pool has at least two entries.
func (d *Deriver) EmojiPair(tone string) [2]string {
	pool, ok := d.emojiPools[strings.ToLower(strings.TrimSpace(tone))]
	if !ok || len(pool) == 0 {
		pool = defaultEmojiPool
	}

	first := d.rng.Intn(len(pool))
	second := first
	if len(pool) > 1 {
		for second == first {
			second = d.rng.Intn(len(pool))
		}
	}
	return [2]string{pool[first], pool[second]}
}
