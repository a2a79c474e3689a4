// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import "testing"

func FuzzDecodeServer(f *testing.F) {
	wire := newTestServer().Encode()
	f.Add(wire[:])
	f.Add([]byte{})
	f.Add([]byte{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := DecodeServer(testTime, testClientCookie, data, [][]byte{testSecret1, testSecret2})
		if err != nil {
			return
		}
		if encoded := s.Encode(); string(encoded[:]) != string(data) {
			t.Fatalf("decoded cookie encodes to %x, want %x", encoded, data)
		}
	})
}

func FuzzSplitOptionData(f *testing.F) {
	f.Add(make([]byte, 8))
	f.Add(make([]byte, 24))
	f.Fuzz(func(t *testing.T, data []byte) {
		client, server, err := splitOptionData(data)
		if err != nil {
			return
		}
		if string(client[:])+string(server) != string(data) {
			t.Fatalf("split %x into %x and %x", data, client, server)
		}
	})
}
