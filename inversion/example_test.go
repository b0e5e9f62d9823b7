package inversion_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/inversion"
	"github.com/katalvlaran/paleostress/search"
	"github.com/katalvlaran/paleostress/tensor"
)

// Example recovers a strike-slip regime (σ1 North, σ3 East) from a
// conjugate fault pair, a joint and a stylolite.
func Example() {
	rake := 0.0
	set, err := data.FromRecords([]data.Record{
		{ID: 1, Type: "striated plane", Strike: 45, Dip: 45, DipDirection: "SE",
			Rake: &rake, StrikeDirection: "NE", TypeOfMovement: "LL"},
		{ID: 2, Type: "striated plane", Strike: 135, Dip: 60, DipDirection: "SW",
			Rake: &rake, StrikeDirection: "SE", TypeOfMovement: "RL"},
		{ID: 3, Type: "joint", Strike: 0, Dip: 90, DipDirection: "E"},
		{ID: 4, Type: "stylolite", Strike: 90, Dip: 90, DipDirection: "N"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	grid, err := search.NewGrid(search.GridOptions{
		DeltaGridAngle:          tensor.Rad(2),
		AngleHalfInterval:       tensor.Rad(4),
		DeltaStressRatio:        0.05,
		StressRatioHalfInterval: 0.1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	inv := inversion.New(inversion.WithStrategy(grid))
	inv.AddData(set...)
	inv.SetInteractiveSolution(geomeca.RotationFromAxes(0, 0, math.Pi/2, 0, geomeca.MasterSigma1), 0.5)

	sol, err := inv.Run()
	if err != nil {
		fmt.Println(err)
		return
	}
	st := sol.Tensor()
	t1, p1 := tensor.ToTrendPlunge(st.S1)
	t3, p3 := tensor.ToTrendPlunge(st.S3)
	fmt.Printf("misfit %.4f R %.2f\n", sol.MisfitValue, sol.StressRatio)
	fmt.Printf("σ1 %03.0f/%02.0f σ3 %03.0f/%02.0f\n", tensor.Deg(t1), tensor.Deg(p1), tensor.Deg(t3), tensor.Deg(p3))
	// Output:
	// misfit 0.0000 R 0.50
	// σ1 000/00 σ3 090/00
}
