package text

import "testing"

var benchInput = FromString("The quick brown 🦊 jumps över the lazy 犬. ")

func BenchmarkEncodeUTF16(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = EncodeUTF16(benchInput)
	}
}

func BenchmarkEncodeUTF8(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = EncodeUTF8(benchInput)
	}
}

func BenchmarkDecodeUTF16(b *testing.B) {
	u := EncodeUTF16(benchInput)
	b.ReportAllocs()
	for b.Loop() {
		_ = DecodeUTF16(u)
	}
}

func BenchmarkDecodeUTF8(b *testing.B) {
	u := EncodeUTF8(benchInput)
	b.ReportAllocs()
	for b.Loop() {
		_ = DecodeUTF8(u)
	}
}
