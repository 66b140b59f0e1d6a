package sha256

// expandSchedule fills w with the 64 schedule words of one block.
func expandSchedule(w *[ScheduleLen]uint32, words *Words) {
	copy(w[:WordsPerBlock], words[:])
	for t := WordsPerBlock; t < ScheduleLen; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}
}

// Schedule returns the message schedule derived from one block's words.
func Schedule(words Words) [ScheduleLen]uint32 {
	var w [ScheduleLen]uint32
	expandSchedule(&w, &words)
	return w
}
