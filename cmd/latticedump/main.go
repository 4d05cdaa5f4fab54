package main

import (
	"flag"
	"fmt"
	"os"

	"crystavoid/core"
)

func main() {
	var (
		familyName = flag.String("family", "", "Lattice to dump (FCC or BCC); empty for all")
		maxGrid    = flag.Int("grid", 2, "Largest grid size to tile")
		verbose    = flag.Bool("v", false, "List coordinating atoms of every void")
	)
	flag.Parse()

	families := core.Families
	if *familyName != "" {
		f, err := core.ParseFamily(*familyName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		families = []core.CrystalFamily{f}
	}

	for _, family := range families {
		if err := dump(family, *maxGrid, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", family, err)
			os.Exit(1)
		}
	}
}

func dump(family core.CrystalFamily, maxGrid int, verbose bool) error {
	cell, err := core.CellData(family)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", family)
	fmt.Println(cell.Description)
	fmt.Printf("Packing %s, coordination %d\n", cell.PackingEfficiency, cell.CoordinationNumber)
	fmt.Printf("Per cell: %d octahedral, %d tetrahedral\n\n", cell.EffectiveOctahedralCount, cell.EffectiveTetrahedralCount)

	// Test 1: coordination of each base void
	for _, kind := range []core.VoidKind{core.Octahedral, core.Tetrahedral} {
		voids := cell.Voids(kind)
		fmt.Printf("%s voids: %d\n", kind, len(voids))
		for i, v := range voids {
			neighbors := core.FindCoordinatingAtoms(v, family, kind.CoordinationCount())
			status := "ok"
			if _, err := core.BuildPolyhedron(neighbors); err != nil {
				status = err.Error()
			}
			fmt.Printf("  %2d (%.2f, %.2f, %.2f): %d neighbours, %s\n", i, v[0], v[1], v[2], len(neighbors), status)
			if !verbose {
				continue
			}
			for _, n := range neighbors {
				fmt.Printf("       (%.2f, %.2f, %.2f) at %.4f\n", n[0], n[1], n[2], n.Sub(v).Len())
			}
		}
	}

	// Test 2: tiling
	fmt.Println()
	for n := 1; n <= maxGrid; n++ {
		sc, err := core.BuildSuperCell(cell, family, n)
		if err != nil {
			return err
		}
		fmt.Printf("Grid %d: %d atoms, %d octahedral, %d tetrahedral\n", n, len(sc.Atoms), len(sc.OctVoids), len(sc.TetVoids))
	}
	fmt.Println()
	return nil
}
