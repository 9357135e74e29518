package sim

// DefaultGlyphs is the character set streams draw from: ASCII letters,
// digits and punctuation plus half-width katakana.
var DefaultGlyphs = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"@#$%^&*()_+-=[]{}|;:,.<>?" +
	"ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜｦﾝ")

// MaxShimmer is the most glyphs of one stream re-rolled per tick.
const MaxShimmer = 2
