package ipaddr_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/ipaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{"dotted decimal", "192.168.1.1", 0xC0A80101, false},
		{"all zero", "0.0.0.0", 0, false},
		{"short form", "192.168.257", 0xC0A80101, false},
		{"hex part", "0xC0.168.1.1", 0xC0A80101, false},
		{"octal part", "0300.168.1.1", 0xC0A80101, false},
		{"single number", "3232235777", 0xC0A80101, false},
		{"trailing dot", "192.168.1.1.", 0xC0A80101, false},
		{"too many parts", "1.2.3.4.5", 0, true},
		{"empty part", "1..3.4", 0, true},
		{"part out of range", "1.2.3.999999", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ipaddr.ParseIPv4(tc.input)

			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSerializeIPv4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "192.168.1.1", ipaddr.SerializeIPv4(0xC0A80101))
	assert.Equal(t, "0.0.0.0", ipaddr.SerializeIPv4(0))
	assert.Equal(t, "255.255.255.255", ipaddr.SerializeIPv4(0xFFFFFFFF))
}

func TestIPv4RoundTrip(t *testing.T) {
	t.Parallel()

	for _, addr := range []uint32{0, 1, 0xC0A80101, 0x7F000001, 0xFFFFFFFF} {
		s := ipaddr.SerializeIPv4(addr)

		got, err := ipaddr.ParseIPv4(s)
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	}
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    [8]uint16
		wantErr bool
	}{
		{"loopback", "::1", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, false},
		{"unspecified", "::", [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, false},
		{"full", "2001:db8:0:0:0:0:0:1", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, false},
		{"compressed middle", "2001:db8::1", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, false},
		{"embedded ipv4", "::ffff:192.168.1.1", [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 0x0101}, false},
		{"too many pieces", "1:2:3:4:5:6:7:8:9", [8]uint16{}, true},
		{"double compress", "1::2::3", [8]uint16{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ipaddr.ParseIPv6(tc.input)

			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSerializeIPv6(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[::1]", ipaddr.SerializeIPv6([8]uint16{0, 0, 0, 0, 0, 0, 0, 1}))
	assert.Equal(t, "[::]", ipaddr.SerializeIPv6([8]uint16{0, 0, 0, 0, 0, 0, 0, 0}))
	assert.Equal(t, "[2001:db8::1]", ipaddr.SerializeIPv6([8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}))
}

func TestIPv6RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"::1", "::", "2001:db8::1", "1:2:3:4:5:6:7:8"}

	for _, input := range inputs {
		parsed, err := ipaddr.ParseIPv6(input)
		require.NoError(t, err)

		serialized := ipaddr.SerializeIPv6(parsed)

		reparsed, err := ipaddr.ParseIPv6(serialized[1 : len(serialized)-1])
		require.NoError(t, err)
		assert.Equal(t, parsed, reparsed)
	}
}
