package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "nogui", 10, "nogui"},
		{"exact", "nogui", 5, "nogui"},
		{"launch arguments", "-Xms1G -Xmx4G -jar server.jar nogui", 20, "-Xms1G -Xmx4G -ja..."},
		{"whitespace collapsed", "-Xmx4G\n\t  nogui", 20, "-Xmx4G nogui"},
		{"multi-byte runes", "服务器路径/生存模式", 6, "服务器..."},
		{"clamped", "abcdef", 1, "a..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateCell(tt.input, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), max(tt.maxLen, MinTruncateLen))
		})
	}
}
