// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hllctl is a small demo CLI: a full SQL binder/executor
// integration is out of scope for this module, so hllctl is the
// "does it actually run" surface over the sketch and aggregate
// packages.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/daviszhen/hllbit/pkg/bit"
	"github.com/daviszhen/hllbit/pkg/bitagg"
	"github.com/daviszhen/hllbit/pkg/hll"
	"github.com/daviszhen/hllbit/pkg/util"
)

var runCfg util.Config
var cfgPath string

var RootCmd = &cobra.Command{
	Use:          "hllctl",
	Short:        "hllctl",
	Long:         "hllctl drives the HyperLogLog sketch and bitwise aggregate packages from the command line",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := util.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		runCfg = cfg
		level := zapcore.InfoLevel
		if runCfg.Debug.LogLevel == "debug" {
			level = zapcore.DebugLevel
		}
		return util.InitLogger(level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use hllctl --help or -h")
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "hllctl.toml", "path to hllctl.toml")
	RootCmd.AddCommand(sketchCmd, mergeCmd, bitaggCmd)
	sketchCmd.Flags().StringVar(&sketchOutPath, "out", "", "write the sketch to this path in the HLL wire format")
	sketchCmd.Flags().IntVar(&mergeFormatVersion, "format-version", 3, "wire format version given to hll.NewSerializer (3 or more writes V2, lower writes V1)")
}

var sketchOutPath string

var sketchCmd = &cobra.Command{
	Use:   "sketch [values...]",
	Short: "insert values into a fresh sketch and print its estimated cardinality",
	RunE: func(cmd *cobra.Command, args []string) error {
		h := hll.New()
		for _, v := range args {
			h.InsertElement(hll.Hash([]byte(v)))
		}
		fmt.Printf("count=%d registers=%d bits=%d (config default bits=%d)\n",
			h.Count(), hll.M, hll.Bits, runCfg.HLL.Bits)
		if sketchOutPath != "" {
			return writeSketch(h, sketchOutPath)
		}
		return nil
	},
}

var mergeFormatVersion int

var mergeCmd = &cobra.Command{
	Use:   "merge <left> <right>",
	Short: "merge two serialized sketches and print the merged cardinality",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := readSketch(args[0])
		if err != nil {
			return err
		}
		right, err := readSketch(args[1])
		if err != nil {
			return err
		}
		left.Merge(right)
		fmt.Printf("count=%d\n", left.Count())
		return nil
	},
}

func writeSketch(h *hll.Sketch, path string) error {
	out, err := util.NewFileSerialize(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return hll.NewSerializer(mergeFormatVersion).Serialize(h, out)
}

func readSketch(path string) (*hll.Sketch, error) {
	in, err := util.NewFileDeserialize(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return hll.Deserialize(in)
}

var bitaggOp string
var bitaggMin, bitaggMax int64

var bitaggCmd = &cobra.Command{
	Use:   "bitagg <and|or|xor|range> <values...>",
	Short: "fold integer values through bit_and/bit_or/bit_xor or bitstring_agg",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int64, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("hllctl: invalid integer %q: %w", a, err)
			}
			values = append(values, v)
		}
		switch args[0] {
		case "and":
			return runScalar(values, bitagg.AndOp[int64]{})
		case "or":
			return runScalar(values, bitagg.OrOp[int64]{})
		case "xor":
			return runScalar(values, bitagg.XorOp[int64]{})
		case "range":
			return runRange(values)
		default:
			return fmt.Errorf("hllctl: unknown bitagg operation %q", args[0])
		}
	},
}

func init() {
	bitaggCmd.Flags().Int64Var(&bitaggMin, "min", 0, "bitstring_agg lower bound (defaults to config bitstring_agg.default_min)")
	bitaggCmd.Flags().Int64Var(&bitaggMax, "max", 0, "bitstring_agg upper bound (defaults to config bitstring_agg.default_max)")
}

func runScalar(values []int64, op bitagg.ScalarOp[int64]) error {
	if util.Empty(values) {
		fmt.Println("NULL")
		return nil
	}
	state := &bitagg.ScalarState[int64]{}
	state.Initialize()
	for _, v := range values {
		bitagg.Update(state, op, v)
	}
	result, ok := bitagg.Finalize(state)
	if !ok {
		fmt.Println("NULL")
		return nil
	}
	fmt.Printf("%d\n", result)
	return nil
}

func runRange(values []int64) error {
	min, max := bitaggMin, bitaggMax
	if !bitaggCmd.Flags().Changed("min") {
		min = runCfg.BitstringAgg.DefaultMin
	}
	if !bitaggCmd.Flags().Changed("max") {
		max = runCfg.BitstringAgg.DefaultMax
	}
	bounds := bitagg.RangeBitmapBindData{Min: min, Max: max}
	state := &bitagg.RangeBitmapState{}
	state.Initialize()
	for _, v := range values {
		if err := bitagg.RangeBitmapOperation(state, bounds, v); err != nil {
			return err
		}
	}
	result, ok := bitagg.RangeBitmapFinalize(state)
	if !ok {
		fmt.Println("NULL")
		return nil
	}
	fmt.Println(renderBits(result))
	bitagg.RangeBitmapDestroy(state)
	return nil
}

func renderBits(b *bit.Bitstring) string {
	buf := make([]byte, b.NumBits())
	for i := 0; i < b.NumBits(); i++ {
		if bit.GetBit(b, i) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
