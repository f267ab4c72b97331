package fixtures

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SingleFixture_SplitsHeaderInputOutput(t *testing.T) {
	content := []byte("simple case\n.\na\n.\nb\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	require.Equal(t, "simple case", f.Records[0].Header)
	require.Equal(t, "a\n", f.Records[0].Input)
	require.Equal(t, "b\n", f.Records[0].Output)
}

func TestParse_MultipleFixtures_PreservesOrder(t *testing.T) {
	content := []byte("first\n.\n1\n.\none\n.\n\nsecond\n.\n2\n.\ntwo\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 2)
	require.Equal(t, "first", f.Records[0].Header)
	require.Equal(t, "second", f.Records[1].Header)
	require.Equal(t, "2\n", f.Records[1].Input)
}

func TestParse_HeaderIsLastNonBlankLineBeforeDot(t *testing.T) {
	content := []byte("ignored note\n\nactual header\n\n.\nx\n.\ny\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	require.Equal(t, "actual header", f.Records[0].Header)
}

func TestParse_NoHeader_EmptyHeader(t *testing.T) {
	content := []byte(".\nx\n.\ny\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	require.Equal(t, "", f.Records[0].Header)
}

func TestParse_HeaderNotReusedAcrossFixtures(t *testing.T) {
	content := []byte("named\n.\n1\n.\none\n.\n.\n2\n.\ntwo\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 2)
	require.Equal(t, "named", f.Records[0].Header)
	require.Equal(t, "", f.Records[1].Header)
}

func TestParse_EmptyBlocks_YieldEmptyStrings(t *testing.T) {
	content := []byte("empty\n.\n.\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	require.Equal(t, "", f.Records[0].Input)
	require.Equal(t, "", f.Records[0].Output)
}

func TestParse_MultiLineBlocks_JoinedWithSingleTrailingNewline(t *testing.T) {
	content := []byte("multi\n.\nline one\n\nline three\n.\nout\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Equal(t, "line one\n\nline three\n", f.Records[0].Input)
}

func TestParse_MetaBlock_ParsedAsYAML(t *testing.T) {
	content := []byte("---\ndesc: CommonMark basics\nskip: true\n---\n\ncase\n.\nx\n.\ny\n.\n")

	f, err := Parse(content)
	require.NoError(t, err)
	require.Equal(t, "CommonMark basics", f.Meta.Desc)
	require.Equal(t, true, f.Meta.Fields["skip"])
	require.Len(t, f.Records, 1)
	require.Equal(t, "case", f.Records[0].Header)
}

func TestParse_MetaBlockUnterminated_ReturnsError(t *testing.T) {
	_, err := Parse([]byte("---\ndesc: broken\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnterminatedMeta))
}

func TestParse_UnterminatedFixture_ReturnsError(t *testing.T) {
	cases := map[string][]byte{
		"open input block":  []byte("case\n.\nx\n"),
		"open output block": []byte("case\n.\nx\n.\ny\n"),
		"dot at end":        []byte("case\n.\nx\n.\n"),
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(content)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrUnterminatedFixture))
		})
	}
}

func TestParse_NoFixtures_EmptyRecords(t *testing.T) {
	f, err := Parse([]byte("just prose, no fixtures\n"))
	require.NoError(t, err)
	require.Empty(t, f.Records)
}
