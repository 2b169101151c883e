package handshake

import "testing"

func TestHeaderCountMonotonicity(t *testing.T) {
	cases := []struct {
		i    int
		want byte
	}{
		{0, 0x60},
		{0xBE, 0x01},
	}
	for _, c := range cases {
		got := byte((cartridgeHeaderLen - c.i) / 2)
		if got != c.want {
			t.Errorf("i=0x%x: got expected-count 0x%x, want 0x%x", c.i, got, c.want)
		}
	}
}
