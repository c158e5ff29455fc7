// Command meshtools reads points from stdin, one "x y z" per line, and writes
// their convex hull or tetrahedralization to stdout as a mesh.
//
//	meshtools hull < points.txt > hull.obj
//	meshtools delaunay --max 10 --format json < points.txt
//	meshtools hull --png hull.png --imgcat < points.txt
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshtools/chull"
	"github.com/osuushi/meshtools/delaunay"
	"github.com/osuushi/meshtools/geom"
	"github.com/osuushi/meshtools/mesh"
	"github.com/osuushi/meshtools/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	verbose bool
	noColor bool
	format  string

	png    string
	imgcat bool
	render render.Options

	hull     *kingpin.CmdClause
	validate bool

	delaunay   *kingpin.CmdClause
	maxVal     float64
	rootOnly   bool
	strict     bool
	withBounds bool
}

func newApp() (*kingpin.Application, *config) {
	cfg := &config{render: render.DefaultOptions()}
	app := kingpin.New("meshtools", "Convex hulls and tetrahedralizations of 3D points read from stdin.")
	app.Flag("verbose", "Log every construction step.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("no-color", "Plain summary output.").BoolVar(&cfg.noColor)
	app.Flag("format", "Output mesh format.").Default("obj").EnumVar(&cfg.format, "obj", "json")
	app.Flag("png", "Also draw a wireframe to this PNG file.").StringVar(&cfg.png)
	app.Flag("imgcat", "Print the PNG to stderr as an inline image (iTerm only). Requires --png.").BoolVar(&cfg.imgcat)
	app.Flag("size", "Wireframe image size in pixels.").Default("512").IntVar(&cfg.render.Size)
	app.Flag("yaw", "Wireframe rotation about z, in degrees.").Default("30").Float64Var(&cfg.render.Yaw)
	app.Flag("pitch", "Wireframe rotation about x, in degrees.").Default("-60").Float64Var(&cfg.render.Pitch)

	cfg.hull = app.Command("hull", "Compute the convex hull.")
	cfg.hull.Flag("validate", "Check mesh invariants after every insertion.").BoolVar(&cfg.validate)

	cfg.delaunay = app.Command("delaunay", "Tetrahedralize the points.")
	cfg.delaunay.Flag("max", "Coordinate bound. Zero uses the largest input coordinate.").Default("0").Float64Var(&cfg.maxVal)
	cfg.delaunay.Flag("root-only", "Only test the root tetrahedron when placing points.").BoolVar(&cfg.rootOnly)
	cfg.delaunay.Flag("strict", "Fail on points outside the bound instead of skipping them.").BoolVar(&cfg.strict)
	cfg.delaunay.Flag("with-bounds", "Include tetrahedra touching the bounding vertices.").BoolVar(&cfg.withBounds)
	return app, cfg
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "meshtools:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app, cfg := newApp()
	command, err := app.Parse(args)
	if err != nil {
		return err
	}
	cfg.render.Yaw = mgl64.DegToRad(cfg.render.Yaw)
	cfg.render.Pitch = mgl64.DegToRad(cfg.render.Pitch)

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	points, err := readPoints(stdin)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(points)))

	au := aurora.NewAurora(!cfg.noColor)
	var m *mesh.Mesh
	switch command {
	case cfg.hull.FullCommand():
		hull, err := chull.Build(points, chull.WithLogger(logger), chull.WithValidation(cfg.validate))
		if err != nil {
			return err
		}
		m = mesh.FromHull("hull", hull)
		fmt.Fprintf(stderr, "%s %d points, %d hull vertices, %d faces, volume %g\n",
			au.Green("hull:"), len(points), au.Cyan(m.VertexCount()), au.Cyan(m.TriangleCount()), hull.Volume())

	case cfg.delaunay.FullCommand():
		maxVal := cfg.maxVal
		if maxVal == 0 {
			maxVal = geom.MaxAbs(points)
			if maxVal == 0 {
				maxVal = 1
			}
		}
		location := delaunay.Descend
		if cfg.rootOnly {
			location = delaunay.RootOnly
		}
		d, err := delaunay.Build(points, maxVal,
			delaunay.WithLogger(logger),
			delaunay.WithLocation(location),
			delaunay.WithStrictBounds(cfg.strict),
		)
		if err != nil {
			return err
		}
		selected := d.InteriorLeaves()
		if cfg.withBounds {
			selected = d.Leaves()
		}
		tetras := make([][4]int, len(selected))
		all := d.Tetras()
		for i, index := range selected {
			tetras[i] = all[index]
		}
		m = mesh.FromTetrahedra("delaunay", d.Vertices(), tetras)
		fmt.Fprintf(stderr, "%s %d points, %d tetras, %d leaves, %d exported, %d skipped\n",
			au.Green("delaunay:"), len(points), au.Cyan(d.Len()), au.Cyan(len(d.Leaves())), au.Cyan(len(tetras)), au.Yellow(len(d.Skipped())))
	}

	if err := writeMesh(m, cfg.format, stdout); err != nil {
		return err
	}
	return drawMesh(m, cfg, stderr)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zapConfig.Build()
}

func writeMesh(m *mesh.Mesh, format string, out io.Writer) error {
	switch format {
	case "json":
		return m.WriteJSON(out)
	default:
		return m.WriteOBJ(out)
	}
}

// The preview goes to preview rather than stdout, so it never ends up inside
// the mesh output.
func drawMesh(m *mesh.Mesh, cfg *config, preview io.Writer) error {
	if cfg.png == "" {
		if cfg.imgcat {
			return errors.New("--imgcat requires --png")
		}
		return nil
	}
	c := render.Wireframe(m.Positions(), m.Edges(), cfg.render)
	if cfg.imgcat {
		return render.Show(c, cfg.png, preview)
	}
	return render.SavePNG(c, cfg.png)
}

// Read newline separated points in the form "x y z". Blank lines and lines
// starting with # are ignored.
func readPoints(in io.Reader) ([]geom.Vector, error) {
	var points []geom.Vector
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

func parsePoint(line string) (geom.Vector, error) {
	var point geom.Vector
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 3 {
		return point, errors.Errorf("expected 3 coordinates, got %d in %q", len(parts), line)
	}
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return point, errors.Wrapf(err, "coordinate %d", i)
		}
		point[i] = value
	}
	return point, nil
}
