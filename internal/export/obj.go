package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/driftline/terraclip/pkg/clipmap"
)

// WriteOBJ writes meshes to w in Wavefront OBJ format, one object per
// mesh. OBJ vertex indices are global and 1-based, so each mesh's faces
// are shifted by the vertex counts of the meshes before it.
func WriteOBJ(w io.Writer, meshes []clipmap.Mesh) error {
	bw := bufio.NewWriterSize(w, 256*1024)

	fmt.Fprintln(bw, "# terraclip mesh export")

	base := uint32(1)
	for i, mesh := range meshes {
		fmt.Fprintf(bw, "o tile%d\n", i)
		for _, p := range mesh.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
		}
		for _, n := range mesh.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
		}
		for j := 0; j+2 < len(mesh.Indices); j += 3 {
			a := mesh.Indices[j] + base
			b := mesh.Indices[j+1] + base
			c := mesh.Indices[j+2] + base
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += uint32(len(mesh.Positions))
	}

	return bw.Flush()
}

// WriteOBJFile writes meshes to path as OBJ. Output is zstd-compressed
// when compress is true or the path ends in .zst.
func WriteOBJFile(path string, meshes []clipmap.Mesh, compress bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if compress || strings.HasSuffix(path, ".zst") {
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if err := WriteOBJ(enc, meshes); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}

	return WriteOBJ(f, meshes)
}
