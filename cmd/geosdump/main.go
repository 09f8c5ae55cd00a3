// Command geosdump reads a WKT geometry and prints the result of
// running one of the engine's operations over it, demonstrating the
// wkt/wkb/hull/buffer/simplify packages from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogeos/geos/buffer"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/hull"
	"github.com/gogeos/geos/simplify"
	"github.com/gogeos/geos/wkb"
	"github.com/gogeos/geos/wkt"
)

func main() {
	op := flag.String("op", "wkt", "operation: wkt, wkb, hull, envelope, simplify, buffer")
	input := flag.String("wkt", "", "input geometry as WKT (reads stdin if empty)")
	tolerance := flag.Float64("tolerance", 1.0, "tolerance for -op simplify")
	distance := flag.Float64("distance", 1.0, "distance for -op buffer")
	flag.Parse()

	in := *input
	if in == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "geosdump: reading stdin:", err)
			os.Exit(1)
		}
		in = strings.TrimSpace(string(data))
	}

	g, err := wkt.ReadString(in, geom.NewFactory(nil, 0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "geosdump: parsing WKT:", err)
		os.Exit(1)
	}

	switch *op {
	case "wkt":
		out, err := wkt.WriteString(g)
		exitOnError(err)
		fmt.Println(out)
	case "wkb":
		var buf strings.Builder
		exitOnError(wkb.Write(&buf, g))
		fmt.Println(hex.EncodeToString([]byte(buf.String())))
	case "hull":
		out, err := hull.Compute(g)
		exitOnError(err)
		printWKT(out)
	case "envelope":
		env := g.Envelope()
		fmt.Printf("POLYGON ((%g %g, %g %g, %g %g, %g %g, %g %g))\n",
			env.MinX, env.MinY, env.MaxX, env.MinY, env.MaxX, env.MaxY, env.MinX, env.MaxY, env.MinX, env.MinY)
	case "simplify":
		out, err := simplify.TopologyPreserving(g, *tolerance)
		exitOnError(err)
		printWKT(out)
	case "buffer":
		out, err := buffer.Compute(g, *distance, buffer.Params{})
		exitOnError(err)
		printWKT(out)
	default:
		fmt.Fprintf(os.Stderr, "geosdump: unknown -op %q\n", *op)
		os.Exit(1)
	}
}

func printWKT(g geom.Geometry) {
	out, err := wkt.WriteString(g)
	exitOnError(err)
	fmt.Println(out)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "geosdump:", err)
		os.Exit(1)
	}
}
