package image

// codec converts between the stored bytes of one pixel and straight RGBA.
// One codec exists per Format; PixelBuf picks it at construction.
type codec struct {
	load  func(p []byte) (r, g, b, a uint8)
	store func(p []byte, r, g, b, a uint8)
}

// codecTable is the strategy table keyed by Format.
var codecTable = [formatCount]codec{
	FormatRGBA8: {
		load: func(p []byte) (r, g, b, a uint8) {
			return p[0], p[1], p[2], p[3]
		},
		store: func(p []byte, r, g, b, a uint8) {
			p[0], p[1], p[2], p[3] = r, g, b, a
		},
	},
	FormatBGRA8: {
		load: func(p []byte) (r, g, b, a uint8) {
			return p[2], p[1], p[0], p[3]
		},
		store: func(p []byte, r, g, b, a uint8) {
			p[0], p[1], p[2], p[3] = b, g, r, a
		},
	},
	FormatRGB8: {
		load: func(p []byte) (r, g, b, a uint8) {
			return p[0], p[1], p[2], 255
		},
		store: func(p []byte, r, g, b, _ uint8) {
			p[0], p[1], p[2] = r, g, b
		},
	},
	FormatBGR8: {
		load: func(p []byte) (r, g, b, a uint8) {
			return p[2], p[1], p[0], 255
		},
		store: func(p []byte, r, g, b, _ uint8) {
			p[0], p[1], p[2] = b, g, r
		},
	},
	FormatRGB565: {
		load: func(p []byte) (r, g, b, a uint8) {
			v := uint16(p[0]) | uint16(p[1])<<8
			r5 := uint8(v >> 11 & 0x1f)
			g6 := uint8(v >> 5 & 0x3f)
			b5 := uint8(v & 0x1f)
			// Replicate the high bits so 0x1f expands to 0xff.
			return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2, 255
		},
		store: func(p []byte, r, g, b, _ uint8) {
			v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
			p[0] = byte(v)
			p[1] = byte(v >> 8)
		},
	},
	FormatGray8: {
		load: func(p []byte) (r, g, b, a uint8) {
			return p[0], p[0], p[0], 255
		},
		store: func(p []byte, r, g, b, _ uint8) {
			// Standard luminance: 0.299*R + 0.587*G + 0.114*B
			p[0] = byte((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
		},
	},
}

// blendOver composites a straight-alpha source color over a straight-alpha
// destination color (Porter-Duff source-over).
func blendOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	srcAlpha := float64(sa) / 255.0
	dstAlpha := float64(da) / 255.0
	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	mix := func(s, d uint8) uint8 {
		v := (float64(s)*srcAlpha + float64(d)*dstAlpha*(1-srcAlpha)) / outAlpha
		return uint8(v + 0.5)
	}

	return mix(sr, dr), mix(sg, dg), mix(sb, db), uint8(outAlpha*255.0 + 0.5)
}
