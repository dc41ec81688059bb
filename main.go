package main

import "github.com/asheeshsahu/MyHybridWorkoutPlan/cmd/hybridfit"

func main() {
	hybridfit.Execute()
}
