package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeQuotesEveryCell(t *testing.T) {
	got := Encode([][]string{{"a", "b"}, {"c", "d"}})
	require.Equal(t, "\"a\",\"b\"\n\"c\",\"d\"", string(got))
}

func TestEncodeEscapesQuotes(t *testing.T) {
	got := Encode([][]string{{`say "hi"`, "x,y"}})
	require.Equal(t, `"say ""hi""","x,y"`, string(got))
}

func TestDecodePreservesShapes(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {}, {""}, {`q"uote`, "com,ma"}, {"日本"}}
	decoded, err := Decode(Encode(rows))
	require.NoError(t, err)
	require.Equal(t, rows, decoded)
}

func TestDecodeAcceptsLooseInput(t *testing.T) {
	decoded, err := Decode([]byte("a,b\r\n\"c\",d\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, decoded)

	empty, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestDecodeRejectsUnterminatedQuote(t *testing.T) {
	_, err := Decode([]byte("\"ok\"\n\"broken"))
	require.ErrorContains(t, err, "line 2")
}

func TestDecodeKeepsNewlinesInsideQuotes(t *testing.T) {
	decoded, err := Decode([]byte("\"multi\nline\",x\n\"y\""))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"multi\nline", "x"}, {"y"}}, decoded)

	rows := [][]string{{"a\r\nb", "\n"}, {}, {"tail\n"}}
	decoded, err = Decode(Encode(rows))
	require.NoError(t, err)
	require.Equal(t, rows, decoded)
}

func TestDecodeReportsLineWhereQuoteOpened(t *testing.T) {
	_, err := Decode([]byte("a\n\"spans\nmany\nlines"))
	require.ErrorContains(t, err, "line 2: unterminated quote")
}
