package textenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8Passthrough(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF-8", "utf8"} {
		out, err := Decode([]byte("日本語"), name)
		require.NoError(t, err)
		require.Equal(t, "日本語", out)

		data, err := Encode("日本語", name)
		require.NoError(t, err)
		require.Equal(t, []byte("日本語"), data)
	}
}

func TestShiftJISRoundTrip(t *testing.T) {
	data, err := Encode("テスト", "shift_jis")
	require.NoError(t, err)
	require.NotEqual(t, []byte("テスト"), data)

	out, err := Decode(data, "shift_jis")
	require.NoError(t, err)
	require.Equal(t, "テスト", out)
}

func TestUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "no-such-charset")
	require.Error(t, err)

	_, err = Encode("x", "no-such-charset")
	require.Error(t, err)
}
