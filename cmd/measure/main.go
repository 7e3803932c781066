package main

import (
	"math"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/g-m-twostay/bintree/Expressions"
	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var (
	nodes    = flag.Uint32("nodes", 1000000, "largest tree size measured")
	steps    = flag.Uint32("steps", 10, "number of tree sizes between 0 and --nodes")
	seed     = flag.Int64("seed", 0, "seed of the random workload")
	logLevel = flag.String("log-level", "info", "logrus level")
)

var _R rand.Rand

// randomTree grows a tree of n nodes by attaching each node to a random free
// child slot of a random existing node.
func randomTree(n uint32) *Trees.Tree[uint32, uint32] {
	tree := Trees.New[uint32, uint32](n)
	if n == 0 {
		return tree
	}
	root, _ := tree.AddRoot(0)
	ps := []Trees.Pos[uint32, uint32]{root}
	for v := uint32(1); v < n; {
		p := ps[_R.Intn(len(ps))]
		var c Trees.Pos[uint32, uint32]
		var err error
		if _R.Intn(2) == 0 {
			c, err = tree.AddLeft(p, v)
		} else {
			c, err = tree.AddRight(p, v)
		}
		if err == nil {
			ps = append(ps, c)
			v++
		}
	}
	return tree
}

var operators = [...]Expressions.Token{Expressions.Add, Expressions.Sub, Expressions.Mul, Expressions.Div}

// randomExpression builds a full expression tree with n leaves holding
// integers in [1,10).
func randomExpression(n uint32) *Trees.Tree[Expressions.Token, uint32] {
	tree := Trees.New[Expressions.Token, uint32](2*n - 1)
	root, _ := tree.AddRoot("1")
	leaves := []Trees.Pos[Expressions.Token, uint32]{root}
	for uint32(len(leaves)) < n {
		k := _R.Intn(len(leaves))
		p := leaves[k]
		tree.SetElement(p, operators[_R.Intn(len(operators))])
		l, _ := tree.AddLeft(p, Expressions.Token(strconv.Itoa(1+_R.Intn(9))))
		r, _ := tree.AddRight(p, Expressions.Token(strconv.Itoa(1+_R.Intn(9))))
		leaves[k] = l
		leaves = append(leaves, r)
	}
	return tree
}

var (
	n    uint32
	sink int
)

func BenchmarkBuild(b *testing.B) {
	for range b.N {
		sink = int(randomTree(n).Size())
	}
}

func BenchmarkRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := randomTree(n)
		b.StartTimer()
		for !tree.Empty() {
			// pre-order visits a node before its children, so the first node
			// with less than two children is always found quickly.
			for p := range tree.Walk(tree.Root(), Trees.PreOrder) {
				if _, err := tree.Remove(p); err == nil {
					break
				}
			}
		}
	}
}

func BenchmarkLevelOrder(b *testing.B) {
	b.StopTimer()
	tree := randomTree(n)
	b.StartTimer()
	for range b.N {
		sink = len(tree.LevelOrderElements(tree.Root()))
	}
}

func BenchmarkEval(b *testing.B) {
	b.StopTimer()
	tree := randomExpression(max(n/2, 1))
	b.StartTimer()
	for range b.N {
		if _, err := Expressions.Eval(tree); err != nil && !isArithmetic(err) {
			b.Fatal(err)
		}
	}
}

func isArithmetic(err error) bool {
	var dz *Expressions.DivisionByZeroError
	return errors.As(err, &dz)
}

// measure runs f once per step and logs the mean and standard deviation of ms/op.
func measure(name string, f func(*testing.B)) {
	var cs []float64
	for i := uint32(1); i <= *steps; i++ {
		n = *nodes / *steps * i
		br := testing.Benchmark(f)
		c := float64(br.NsPerOp()) / 1e6
		cs = append(cs, c)
		log.WithFields(log.Fields{"op": name, "n": n, "iterations": br.N, "ms/op": c}).Debug("step")
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	log.WithFields(log.Fields{
		"op":     name,
		"steps":  len(cs),
		"avg":    avg,
		"stddev": math.Sqrt(sum / float64(len(cs))),
	}).Info("ms/op")
}

func main() {
	testing.Init()
	flag.Parse()
	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("bad --log-level")
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)
	if *steps == 0 || *nodes < *steps {
		log.WithFields(log.Fields{"nodes": *nodes, "steps": *steps}).Fatal("need 0 < steps <= nodes")
	}
	_R = *rand.New(rand.NewSource(*seed))
	measure("build", BenchmarkBuild)
	measure("remove", BenchmarkRemove)
	measure("level-order", BenchmarkLevelOrder)
	measure("eval", BenchmarkEval)
}
