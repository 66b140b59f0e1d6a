package sha256

// compress runs the 64 rounds over one block's schedule and adds the
// result into h.
func compress(h *[8]uint32, w *[ScheduleLen]uint32) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < ScheduleLen; i++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + _K[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// blockGeneric folds every whole chunk of p into dig, in order.
func blockGeneric(dig *[8]uint32, p []byte) {
	var (
		words Words
		w     [ScheduleLen]uint32
	)
	for len(p) >= chunk {
		parseWords(&words, p)
		expandSchedule(&w, &words)
		compress(dig, &w)
		p = p[chunk:]
	}
}
