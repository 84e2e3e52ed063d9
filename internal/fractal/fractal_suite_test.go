package fractal_test

import (
	"image"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractview/internal/fractal"
)

func TestFractal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fractal Engine Suite")
}

var _ = Describe("Escape", func() {
	It("never escapes at the origin", func() {
		Expect(fractal.Escape(0, 0, 50)).To(Equal(50))
	})

	It("classifies points on the main cardioid as inside", func() {
		Expect(fractal.Escape(-0.1, 0.1, 500)).To(Equal(500))
	})

	It("escapes quickly far from the set", func() {
		Expect(fractal.Escape(2, 2, 1000)).To(BeNumerically("<", 5))
	})

	It("is bounded by the iteration budget", func() {
		for _, budget := range []int{1, 7, 100} {
			Expect(fractal.Escape(0.3, 0.5, budget)).To(BeNumerically("<=", budget))
		}
	})
})

var _ = Describe("Viewport", func() {
	var v *fractal.Viewport

	BeforeEach(func() {
		v = fractal.New()
		Expect(v.SetSize(80, 60)).To(Succeed())
	})

	It("starts at the default window", func() {
		Expect(v.Window()).To(Equal(fractal.DefaultWindow()))
	})

	Describe("Zoom", func() {
		It("nests successive windows", func() {
			first := v.Window()
			Expect(v.Zoom(image.Rect(10, 10, 60, 40))).To(Succeed())
			second := v.Window()
			Expect(v.Zoom(image.Rect(20, 20, 50, 35))).To(Succeed())
			third := v.Window()

			Expect(first.Contains(second)).To(BeTrue())
			Expect(second.Contains(third)).To(BeTrue())
			Expect(third.Valid()).To(BeTrue())
		})

		It("follows the pixel selection's aspect, not the plane's", func() {
			// A full-width, half-height selection halves only the y range.
			before := v.Window()
			Expect(v.Zoom(image.Rect(0, 0, 80, 30))).To(Succeed())
			after := v.Window()

			Expect(after.SpanX()).To(BeNumerically("~", before.SpanX(), 1e-12))
			Expect(after.SpanY()).To(BeNumerically("~", before.SpanY()/2, 1e-12))
		})
	})

	Describe("Reset", func() {
		It("restores the default window but keeps dimensions", func() {
			Expect(v.Zoom(image.Rect(10, 10, 20, 20))).To(Succeed())
			v.Reset()

			Expect(v.Window()).To(Equal(fractal.DefaultWindow()))
			Expect(v.Image().Bounds().Dx()).To(Equal(80))
			Expect(v.Image().Bounds().Dy()).To(Equal(60))
		})
	})

	Describe("recompute", func() {
		It("produces identical rasters for identical inputs", func() {
			other := fractal.New()
			Expect(other.SetSize(80, 60)).To(Succeed())
			Expect(v.Image().Pix).To(Equal(other.Image().Pix))
		})
	})
})
