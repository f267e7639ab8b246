// Command geom2d answers geometry questions about the shapes of a scene file.
//
// A scene is a YAML file (see internal/fixtures/mixed.yaml), an SVG file, or a
// .pts list of "x y" lines with a blank line between polygons. "-" reads such a
// list from stdin. Embedded scenes can be named with a "fixture:" prefix, e.g.
// fixture:ring.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geom2d/advanced"
	"github.com/osuushi/geom2d/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const fixturePrefix = "fixture:"

var (
	app     = kingpin.New("geom2d", "Crossing-number geometry queries over a scene of shapes.")
	verbose = app.Flag("verbose", "Log kernel debug output to stderr.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	containsCmd   = app.Command("contains", "Tell which shapes contain a point.")
	containsScene = containsCmd.Arg("scene", "Scene file.").Required().String()
	containsX     = containsCmd.Arg("x", "X coordinate.").Required().Float64()
	containsY     = containsCmd.Arg("y", "Y coordinate.").Required().Float64()

	distanceCmd    = app.Command("distance", "Distance from a point to every shape.")
	distanceScene  = distanceCmd.Arg("scene", "Scene file.").Required().String()
	distanceX      = distanceCmd.Arg("x", "X coordinate.").Required().Float64()
	distanceY      = distanceCmd.Arg("y", "Y coordinate.").Required().Float64()
	distanceMetric = distanceCmd.Flag("metric", "Distance metric.").Default("l2").Enum("l2", "l2sq", "l1", "linf")

	crossingsCmd   = app.Command("crossings", "Crossings of every shape around the ray cast from a point toward +x.")
	crossingsScene = crossingsCmd.Arg("scene", "Scene file.").Required().String()
	crossingsX     = crossingsCmd.Arg("x", "X coordinate.").Required().Float64()
	crossingsY     = crossingsCmd.Arg("y", "Y coordinate.").Required().Float64()

	intersectsCmd   = app.Command("intersects", "Pairwise intersection tests.")
	intersectsScene = intersectsCmd.Arg("scene", "Scene file.").Required().String()
	intersectsNames = intersectsCmd.Arg("shapes", "Restrict to these shapes.").Strings()

	queryCmd   = app.Command("query", "Look up shapes at a point through the spatial index.")
	queryScene = queryCmd.Arg("scene", "Scene file.").Required().String()
	queryX     = queryCmd.Arg("x", "X coordinate.").Required().Float64()
	queryY     = queryCmd.Arg("y", "Y coordinate.").Required().Float64()

	renderCmd    = app.Command("render", "Draw the scene to a PNG file.")
	renderScene  = renderCmd.Arg("scene", "Scene file.").Required().String()
	renderOut    = renderCmd.Flag("out", "Output PNG file.").Short('o').Default("scene.png").String()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("20").Float64()
	renderImgcat = renderCmd.Flag("imgcat", "Print the image in the terminal (iTerm only) instead of saving it.").Bool()

	maskCmd   = app.Command("mask", "Print the raster mask of one shape as text.")
	maskScene = maskCmd.Arg("scene", "Scene file.").Required().String()
	maskShape = maskCmd.Arg("shape", "Shape name.").Required().String()
	maskScale = maskCmd.Flag("scale", "Pixels per unit.").Default("2").Float64()

	dumpCmd   = app.Command("dump", "Print the decoded scene.")
	dumpScene = dumpCmd.Arg("scene", "Scene file.").Required().String()
	dumpRaw   = dumpCmd.Flag("raw", "Dump with go-spew instead of kr/pretty.").Bool()

	fixturesCmd = app.Command("fixtures", "List the embedded scenes.")
)

var au aurora.Aurora

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au = aurora.NewAurora(!*noColor)
	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case containsCmd.FullCommand():
		err = runContains(*containsScene, advanced.Point{X: *containsX, Y: *containsY})
	case distanceCmd.FullCommand():
		err = runDistance(*distanceScene, advanced.Point{X: *distanceX, Y: *distanceY}, *distanceMetric)
	case crossingsCmd.FullCommand():
		err = runCrossings(*crossingsScene, advanced.Point{X: *crossingsX, Y: *crossingsY})
	case intersectsCmd.FullCommand():
		err = runIntersects(*intersectsScene, *intersectsNames)
	case queryCmd.FullCommand():
		err = runQuery(*queryScene, advanced.Point{X: *queryX, Y: *queryY})
	case renderCmd.FullCommand():
		err = runRender(*renderScene, *renderOut, *renderScale, *renderImgcat)
	case maskCmd.FullCommand():
		err = runMask(*maskScene, *maskShape, *maskScale)
	case dumpCmd.FullCommand():
		err = runDump(*dumpScene, *dumpRaw)
	case fixturesCmd.FullCommand():
		for _, name := range internal.FixtureNames() {
			fmt.Println(fixturePrefix + name)
		}
	}
	app.FatalIfError(err, "%s", command)
}

// Kernel errors surface as panics. Convert them like the library facade does.
func guard(err *error) {
	if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
		*err = errors.Wrap(recovered, "geometry")
	}
}

func loadScene(name string) (*internal.Scene, error) {
	if name == "-" {
		scene, err := internal.DecodePolygons(os.Stdin, advanced.NonZero)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		scene.Name = "stdin"
		return scene, nil
	}
	if strings.HasPrefix(name, fixturePrefix) {
		return internal.LoadFixture(strings.TrimPrefix(name, fixturePrefix))
	}
	return internal.LoadScene(name)
}

func verdict(ok bool, yes, no string) aurora.Value {
	if ok {
		return au.Green(yes)
	}
	return au.Red(no)
}

func runContains(sceneName string, p advanced.Point) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	for _, named := range scene.Shapes {
		fmt.Printf("%s\t%s\n", au.Bold(named.Name), verdict(named.Shape.Contains(p.X, p.Y), "inside", "outside"))
	}
	return nil
}

func runDistance(sceneName string, p advanced.Point, metric string) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	for _, named := range scene.Shapes {
		var d float64
		switch metric {
		case "l2sq":
			d = named.Shape.DistanceSquared(p)
		case "l1":
			d = named.Shape.DistanceL1(p)
		case "linf":
			d = named.Shape.DistanceLinf(p)
		default:
			d = named.Shape.Distance(p)
		}
		fmt.Printf("%s\t%s\tclosest %v\n", au.Bold(named.Name), au.Yellow(fmt.Sprintf("%.9g", d)), named.Shape.ClosestPointTo(p))
	}
	return nil
}

func runCrossings(sceneName string, p advanced.Point) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	for _, named := range scene.Shapes {
		c := advanced.PathCrossingsFromPoint(scene.Iterator(named.Shape), p.X, p.Y, true, false)
		var shown interface{} = c
		if !*noColor {
			shown = c.Colored()
		}
		fmt.Printf("%s\t%v\n", au.Bold(named.Name), shown)
	}
	return nil
}

func runIntersects(sceneName string, names []string) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	shapes := scene.Shapes
	if len(names) > 0 {
		shapes = nil
		for _, name := range names {
			shape, ok := scene.Find(name)
			if !ok {
				return errors.Errorf("no shape named %q in %s", name, scene.Name)
			}
			shapes = append(shapes, internal.NamedShape{Name: name, Shape: shape})
		}
	}
	for i, a := range shapes {
		for _, b := range shapes[i+1:] {
			hit := advanced.Intersects(a.Shape, b.Shape)
			fmt.Printf("%s × %s\t%s\n", au.Bold(a.Name), au.Bold(b.Name), verdict(hit, "intersect", "disjoint"))
		}
	}
	return nil
}

func runQuery(sceneName string, p advanced.Point) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	index := advanced.NewShapeIndex()
	names := make(map[*advanced.IndexEntry]string, len(scene.Shapes))
	for _, named := range scene.Shapes {
		names[index.Insert(named.Shape)] = named.Name
	}

	hits := index.ContainingPoint(p.X, p.Y)
	fmt.Printf("%d of %d shapes contain %v\n", au.Bold(len(hits)), index.Len(), p)
	for _, entry := range hits {
		fmt.Printf("  %s\n", au.Green(names[entry]))
	}
	if nearest := index.Nearest(p.X, p.Y); nearest != nil {
		fmt.Printf("nearest box: %s (%s)\n", au.Yellow(names[nearest]), nearest)
	}
	return nil
}

func runRender(sceneName, out string, scale float64, toTerminal bool) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	if toTerminal {
		return advanced.RenderToTerminal(scene.All(), scale)
	}
	if err := advanced.Render(scene.All(), scale, out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", au.Green(out))
	return nil
}

func runMask(sceneName, shapeName string, scale float64) (err error) {
	defer guard(&err)
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	shape, ok := scene.Find(shapeName)
	if !ok {
		return errors.Errorf("no shape named %q in %s", shapeName, scene.Name)
	}
	mask := advanced.RasterizeMask(shape, shape.BoundingBox(), scale)
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			switch a := mask.AlphaAt(x, y).A; {
			case a >= 0xc0:
				line.WriteByte('#')
			case a >= 0x40:
				line.WriteByte('+')
			default:
				line.WriteByte('.')
			}
		}
		fmt.Println(line.String())
	}
	return nil
}

func runDump(sceneName string, raw bool) error {
	scene, err := loadScene(sceneName)
	if err != nil {
		return err
	}
	if raw {
		spew.Dump(scene)
	} else {
		pretty.Println(scene)
	}
	return nil
}
