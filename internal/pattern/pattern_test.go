package pattern

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	t.Parallel()
	p := MustCompile(`T\([0-9.]+\)`)

	assert.Equal(t, []string{"T(0.5)", "T(2)"}, p.FindAll("a = T(0.5) + T(2) * T(x)"))
	assert.Empty(t, p.FindAll("no calls here"))
	assert.Empty(t, p.FindAll(""))
}

func TestFindAllGroup(t *testing.T) {
	t.Parallel()

	t.Run("single group", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`'([^']{2,})'`)
		assert.Equal(t, []string{"ab", "xyz"}, p.FindAllGroup(`c = 'ab'; d = 'x'; e = 'xyz'`, 1))
	})

	t.Run("unmatched alternative yields empty string", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`"([^"]*)"|'([^']*)'`)
		assert.Equal(t, []string{"", "b"}, p.FindAllGroup(`'a' "b"`, 1))
		assert.Equal(t, []string{"a", ""}, p.FindAllGroup(`'a' "b"`, 2))
	})

	t.Run("out of range group", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`x`)
		assert.Equal(t, []string{""}, p.FindAllGroup("x", 3))
	})
}

func TestFindAllMatches(t *testing.T) {
	t.Parallel()

	t.Run("byte offsets", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`'([^']{2,})'`)
		text := "s = \"∀x\"\nc = 'ab'\n"
		got := p.FindAllMatches(text)
		require.Len(t, got, 1)
		assert.Equal(t, "'ab'", got[0].Text)
		assert.Equal(t, "ab", got[0].Group(1))
		assert.Equal(t, "'ab'", text[got[0].Offset:got[0].Offset+len(got[0].Text)])
	})

	t.Run("repeated text keeps its own offset", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`\bx\b`)
		got := p.FindAllMatches("y = abs(x)\nz = x")
		require.Len(t, got, 2)
		assert.Equal(t, 8, got[0].Offset)
		assert.Equal(t, 15, got[1].Offset)
	})

	t.Run("missing groups are empty", func(t *testing.T) {
		t.Parallel()
		p := MustCompile(`"([^"]*)"|'([^']*)'`)
		got := p.FindAllMatches(`'a'`)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Group(1))
		assert.Equal(t, "a", got[0].Group(2))
		assert.Empty(t, got[0].Group(7))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, MustCompile(`q`).FindAllMatches("abc"))
	})
}

func TestMultiline(t *testing.T) {
	t.Parallel()
	text := "function f()\n    1\nend\n  end  \nbackend\n"

	assert.Equal(t, 2, MustCompile(`^\s*end\s*$`, Multiline()).Count(text))
	assert.Equal(t, 0, MustCompile(`^\s*end\s*$`).Count(text))
}

func TestDotAllSpansLines(t *testing.T) {
	t.Parallel()
	text := "try\n    f()\ncatch e\n    g()\nend"

	withDotAll := MustCompile(`try.*?end`, DotAll())
	got, ok := withDotAll.First(text)
	require.True(t, ok)
	assert.Equal(t, text, got)

	assert.False(t, MustCompile(`try.*?end`).Matches(text))
}

func TestLookahead(t *testing.T) {
	t.Parallel()
	p := MustCompile(`catch\s+(?!_|\w+\s*;).*?(?=\n|end)`, DotAll())

	assert.False(t, p.Matches("catch _;\n"))
	assert.False(t, p.Matches("catch err;\n"))
	assert.Equal(t, []string{"catch e"}, p.FindAll("try\n f()\ncatch e\n g()\nend"))
}

func TestReplaceAll(t *testing.T) {
	t.Parallel()
	p := MustCompile(`("([^"]*)"|'([^']*)')\s*not\s+in\s*([^;,\)\n]+)`)

	assert.Equal(t, "!a in [1,2]", p.ReplaceAll(`"a" not in [1,2]`, "!$2$3 in $4"))
	assert.Equal(t, "!b in xs", p.ReplaceAll(`'b' not in xs`, "!$2$3 in $4"))

	unchanged := "x not in y"
	assert.Equal(t, unchanged, p.ReplaceAll(unchanged, "!$2$3 in $4"))
}

func TestCountLiteral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, CountLiteral(`"a" "`, `"`))
	assert.Equal(t, 0, CountLiteral("abc", ""))
	assert.Equal(t, 0, CountLiteral("", "("))
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{""}, Lines(""))
	assert.Equal(t, []string{"a", "b", ""}, Lines("a\nb\n"))
}

func TestMustCompilePanicsOnInvalidExpression(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustCompile(`(unclosed`) })

	_, err := Compile(`(unclosed`)
	assert.Error(t, err)
}

func TestSetLoggerReceivesEngineFailures(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(nil) })

	p := MustCompile(`(.+)*\?`, WithTimeout(10*time.Millisecond))
	assert.Empty(t, p.FindAll("Do you think you found the problem string!"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "pattern scan aborted", entry.Message)
	assert.Equal(t, `(.+)*\?`, entry.Data["pattern"])
}
