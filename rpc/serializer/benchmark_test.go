package serializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ValentinKolb/vcc/rpc/common"
)

// benchmarkParameters returns a set of parameter values for targeted benchmarking
func benchmarkParameters() map[string]map[string]any {
	history := make([]any, 0, 256)
	for i := 0; i < 256; i++ {
		history = append(history, json.Number("1700000000123"))
	}

	return map[string]map[string]any{
		"Empty": {},
		"Small": {"taskId": "task-1"},
		"SystemState": {
			"taskId":      "task-1",
			"systemState": common.SystemState{LocationName: "source", PartType: "Bolt_8mm"}.ToMap(),
		},
		"LargeString": {"text": strings.Repeat("x", 16*1024)},
		"LargeArray":  {"sensorTimestamps": history},
	}
}

// BenchmarkEncodeRequest benchmarks request encoding for all implementations
func BenchmarkEncodeRequest(b *testing.B) {
	for name, factory := range testSerializers {
		for paramsName, params := range benchmarkParameters() {
			b.Run(name+"_"+paramsName, func(b *testing.B) {
				s := factory()
				req := common.NewRequest("Ping", "bench", params)
				var buf bytes.Buffer
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					buf.Reset()
					if err := s.EncodeRequest(&buf, req); err != nil {
						b.Fatalf("Failed to encode: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDecodeResponse benchmarks response decoding for all implementations
func BenchmarkDecodeResponse(b *testing.B) {
	for name, factory := range testSerializers {
		for paramsName, params := range benchmarkParameters() {
			b.Run(name+"_"+paramsName, func(b *testing.B) {
				s := factory()
				data, err := s.EncodeResponse(common.NewResultResponse(params))
				if err != nil {
					b.Fatalf("Failed to encode: %v", err)
				}
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := s.DecodeResponse(data); err != nil {
						b.Fatalf("Failed to decode: %v", err)
					}
				}
			})
		}
	}
}
