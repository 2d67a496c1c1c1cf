package dml

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func batchDescriptors(n int) []ShapeDescriptor {
	types := ShapeTypes()
	descs := make([]ShapeDescriptor, n)
	for i := range descs {
		descs[i] = ShapeDescriptor{
			Geometry: PresetGeometry{Name: types[i%len(types)].String()},
			Fill:     SolidFill{Color: SRGB(uint8(i), 0, 0)},
			Target:   Rect{X: float64(i), Width: float64(10 + i), Height: 20},
		}
	}
	return descs
}

func TestResolveShapes_IndexAligned(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			descs := batchDescriptors(200)
			out, err := ResolveShapes(context.Background(), descs, WithWorkers(workers))
			if err != nil {
				t.Fatalf("ResolveShapes() error = %v", err)
			}
			if len(out) != len(descs) {
				t.Fatalf("len = %d, want %d", len(out), len(descs))
			}
			for i, rs := range out {
				if rs.Target != descs[i].Target {
					t.Fatalf("result %d target = %v, want %v", i, rs.Target, descs[i].Target)
				}
				want, err := ResolveShape(descs[i])
				if err != nil {
					t.Fatal(err)
				}
				if rs.Fill != want.Fill {
					t.Errorf("result %d fill = %v, want %v", i, rs.Fill, want.Fill)
				}
				if len(rs.Path.Segments) != len(want.Path.Segments) {
					t.Errorf("result %d path differs from sequential resolution", i)
				}
			}
		})
	}
}

func TestResolveShapes_Empty(t *testing.T) {
	out, err := ResolveShapes(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResolveShapes(nil) error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestResolveShapes_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveShapes(ctx, batchDescriptors(50), WithWorkers(2))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func BenchmarkResolveShapes(b *testing.B) {
	descs := batchDescriptors(256)
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ResolveShapes(ctx, descs); err != nil {
			b.Fatal(err)
		}
	}
}
