package Trees

import (
	"testing"
)

var (
	bAddN = 1000000
)

var sideEff []int

func BenchmarkAdd(b *testing.B) {
	for range b.N {
		randomTree(bAddN)
	}
}

func BenchmarkInOrderElements(b *testing.B) {
	tree, _ := randomTree(bAddN)
	b.ResetTimer()
	for range b.N {
		sideEff = tree.InOrderElements(tree.Root())
	}
}

func BenchmarkLevelOrderElements(b *testing.B) {
	tree, _ := randomTree(bAddN)
	b.ResetTimer()
	for range b.N {
		sideEff = tree.LevelOrderElements(tree.Root())
	}
}

func BenchmarkWalkInOrder(b *testing.B) {
	tree, _ := randomTree(bAddN)
	b.ResetTimer()
	for range b.N {
		for _, v := range tree.Walk(tree.Root(), InOrder) {
			_ = v
		}
	}
}
