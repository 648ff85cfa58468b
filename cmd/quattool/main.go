// quattool is a CLI calculator for quaternion arithmetic.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/Faultbox/quatkit/internal/config"
	"github.com/Faultbox/quatkit/pkg/quat"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, command string, args []string) error {
	switch command {
	case "mul", "*":
		return cmdMul(out, args)
	case "add", "+":
		return cmdAdd(out, args)
	case "conj":
		return cmdUnary(out, args, quat.Quaternion.Conjugate)
	case "neg":
		return cmdUnary(out, args, quat.Quaternion.Negative)
	case "norm", "unit":
		return cmdUnary(out, args, quat.Quaternion.Unit)
	case "inv":
		return cmdInverse(out, args)
	case "rotate":
		return cmdRotate(out, args)
	case "angle":
		return cmdAngle(out, args, angleDefaults())
	case "axis":
		return cmdAxis(out, args)
	case "matrix":
		return cmdMatrix(out, args)
	case "info":
		return cmdInfo(out, args, angleDefaults())
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// angleDefaults returns the angle search settings from the quatkit config
// file, or the built-in ones when the file cannot be loaded.
func angleDefaults() config.AngleConfig {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v (using built-in angle settings)\n", err)
		return config.Default().Angle
	}
	return cfg.Angle
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `quattool - quaternion calculator

Quaternions are written w,x,y,z (e.g. 1,0,0,0).

Usage:
  quattool <command> [options] <args>

Commands:
  mul <p> <q> [more...]     Hamilton product p*q*...
  add <p> <q> [more...]     Componentwise sum
  conj <q>                  Conjugate
  neg <q>                   Negative
  norm <q>                  Normalize to unit length
  inv <q>                   Inverse (unit quaternions only)
  rotate <r> <v>            Rotate pure v by unit r
  angle [-delta d] [-step s] <q>
                            Angle of a unit quaternion
  axis <angle> <axis>       Build axis*sin(angle) + cos(angle)
  matrix [-rotation] <q>    Left-multiplication (or 3x3 rotation) matrix
  info <q>                  Magnitude and predicates

Examples:
  quattool mul 1,2,3,4 5,6,7,8
  quattool axis 0.7853981634 0,0,1,0
  quattool rotate 0.7071,0,0.7071,0 0,1,0,0`)
}

// parseQuat parses "w,x,y,z".
func parseQuat(s string) (quat.Quaternion, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quat.Quaternion{}, fmt.Errorf("quaternion %q: want 4 comma separated values, got %d", s, len(parts))
	}
	var c [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quat.Quaternion{}, fmt.Errorf("quaternion %q: %w", s, err)
		}
		c[i] = v
	}
	return quat.New(c[0], c[1], c[2], c[3]), nil
}

func parseAll(args []string) ([]quat.Quaternion, error) {
	out := make([]quat.Quaternion, 0, len(args))
	for _, a := range args {
		q, err := parseQuat(a)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func fold(out io.Writer, args []string, n int, op func(a, b quat.Quaternion) quat.Quaternion) error {
	if len(args) < n {
		return fmt.Errorf("need at least %d quaternions", n)
	}
	qs, err := parseAll(args)
	if err != nil {
		return err
	}
	acc := qs[0]
	for _, q := range qs[1:] {
		acc = op(acc, q)
	}
	fmt.Fprintln(out, acc)
	return nil
}

func cmdMul(out io.Writer, args []string) error {
	return fold(out, args, 2, quat.Quaternion.Mul)
}

func cmdAdd(out io.Writer, args []string) error {
	return fold(out, args, 2, quat.Quaternion.Add)
}

func cmdUnary(out io.Writer, args []string, op func(quat.Quaternion) quat.Quaternion) error {
	if len(args) != 1 {
		return fmt.Errorf("need exactly one quaternion")
	}
	q, err := parseQuat(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, op(q))
	return nil
}

func cmdInverse(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("need exactly one quaternion")
	}
	q, err := parseQuat(args[0])
	if err != nil {
		return err
	}
	inv, ok := q.Inverse()
	if !ok {
		fmt.Fprintln(out, "not invertible (not a unit quaternion)")
		return nil
	}
	fmt.Fprintln(out, inv)
	return nil
}

func cmdRotate(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: quattool rotate <rotation> <vector>")
	}
	qs, err := parseAll(args)
	if err != nil {
		return err
	}
	v, err := qs[0].Rotate(qs[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}

func cmdAngle(out io.Writer, args []string, defaults config.AngleConfig) error {
	fs := flag.NewFlagSet("angle", flag.ContinueOnError)
	delta := fs.Float64("delta", defaults.Delta, "Match tolerance for cos² and sin²")
	step := fs.Float64("step", defaults.Step, "Search increment in radians")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: quattool angle [-delta d] [-step s] <q>")
	}
	q, err := parseQuat(fs.Arg(0))
	if err != nil {
		return err
	}
	theta, err := q.AngleWithin(*delta, *step)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%v rad (%.4f deg)\n", theta, theta*180/math.Pi)
	return nil
}

func cmdAxis(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: quattool axis <angle> <axis>")
	}
	angle, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("angle %q: %w", args[0], err)
	}
	axis, err := parseQuat(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, quat.AngleAxis(angle, axis))
	return nil
}

func cmdMatrix(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("matrix", flag.ContinueOnError)
	rotation := fs.Bool("rotation", false, "Print the 3x3 rotation matrix instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: quattool matrix [-rotation] <q>")
	}
	q, err := parseQuat(fs.Arg(0))
	if err != nil {
		return err
	}

	var m mat.Matrix = q.LeftMatrix()
	if *rotation {
		if m, err = q.RotationMatrix(); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%v\n", mat.Formatted(m, mat.Squeeze()))
	return nil
}

func cmdInfo(out io.Writer, args []string, defaults config.AngleConfig) error {
	if len(args) != 1 {
		return fmt.Errorf("need exactly one quaternion")
	}
	q, err := parseQuat(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Quaternion:  %v\n", q)
	fmt.Fprintf(out, "Magnitude:   %v\n", q.Magnitude())
	fmt.Fprintf(out, "Magnitude²:  %v\n", q.MagnitudeSquared())
	fmt.Fprintf(out, "Unit:        %v\n", q.IsUnit())
	fmt.Fprintf(out, "Pure:        %v\n", q.IsPure())
	fmt.Fprintf(out, "Conjugate:   %v\n", q.Conjugate())
	if theta, err := q.AngleWithin(defaults.Delta, defaults.Step); err == nil {
		fmt.Fprintf(out, "Angle:       %v rad\n", theta)
	}
	return nil
}
