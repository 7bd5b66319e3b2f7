package vision

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/vcc/cmd/util"
	"github.com/ValentinKolb/vcc/rpc/client"
	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Performance testing tool for the vision controller",
		Long:    "Measures the round trip time of read-only commands. Calls on the same channel run on separate connections when --threads is > 1",
		Args:    cobra.NoArgs,
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfNumThreads = 1
	perfSkip       = make([]string, 0)
)

// perfTest is a single benchmark, call is run b.N times
type perfTest struct {
	name string
	call func() error
}

func init() {
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. ping,state)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 1, util.WrapString("Number of threads to use for the benchmark"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "metrics"
	perfTestCmd.Flags().Bool(key, false, util.WrapString("Print the client metrics in Prometheus format after the run"))
}

func processPerfConfig(cmd *cobra.Command, args []string) error {
	if err := setupClient(cmd, args); err != nil {
		return err
	}

	perfNumThreads = viper.GetInt("threads")
	if perfNumThreads < 1 {
		return fmt.Errorf("threads must be at least 1")
	}
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}
	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for the vision controller")

	config := vcc.Config()
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(config.String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Println()

	timeout := util.GetCallTimeout()
	tests := []perfTest{
		{"ping", func() error {
			_, err := vcc.Ping(client.PingParams{}, timeout)
			return err
		}},
		{"state", func() error {
			_, err := vcc.GetPublishedStateService(client.GetPublishedStateServiceParams{}, timeout)
			return err
		}},
		{"task-state", func() error {
			_, err := vcc.GetTaskStateService(client.GetTaskStateServiceParams{}, timeout)
			return err
		}},
		{"objects", func() error {
			_, err := vcc.GetLatestDetectedObjects(client.GetLatestDetectedObjectsParams{}, timeout)
			return err
		}},
	}

	fmt.Println("starting tests...")

	results := make(map[string]testing.BenchmarkResult)
	for _, test := range tests {
		result := testing.Benchmark(func(b *testing.B) {
			if shouldSkip(test.name) {
				return
			}

			b.SetParallelism(perfNumThreads)
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if err := test.call(); err != nil {
						log.Printf("(%s) - error: %v\n", test.name, err)
					}
				}
			})
		})
		results[test.name] = result
		printResult(test.name, result)
	}

	// both channels at the same time
	mixedResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("mixed") {
			return
		}

		b.SetParallelism(perfNumThreads)
		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				var err error
				if counter%2 == 0 {
					_, err = vcc.Ping(client.PingParams{}, timeout)
				} else {
					_, err = vcc.GetLatestDetectedObjects(client.GetLatestDetectedObjectsParams{}, timeout)
				}
				if err != nil {
					log.Printf("(mixed) - error: %v\n", err)
				}
				counter++
			}
		})
	})
	results["mixed"] = mixedResult
	printResult("mixed", mixedResult)

	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results, config); err != nil {
			return err
		}
	}

	if viper.GetBool("metrics") {
		fmt.Println()
		vcc.WriteMetrics(os.Stdout)
	}
	return nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	for _, s := range perfSkip {
		if strings.TrimSpace(s) == test {
			return true
		}
	}
	return false
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1)
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult, config common.ClientConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Endpoint", "DefaultTimeoutMS", "Transport", "Threads",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for test, result := range results {
		var nsPerOp, opsPerSec float64
		skipped := "false"
		if result.NsPerOp() == 0 {
			skipped = "true"
		} else {
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			strconv.FormatFloat(nsPerOp, 'f', 0, 64),
			time.Duration(nsPerOp).String(),
			strconv.FormatFloat(opsPerSec, 'f', 0, 64),
			skipped,
			config.Endpoint.String(),
			strconv.FormatUint(config.DefaultTimeoutMS, 10),
			config.Transport.Name,
			strconv.Itoa(perfNumThreads),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %v", err)
		}
	}
	return nil
}
