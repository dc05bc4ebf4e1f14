package sentiment

// Word weights tuned for retail-trading discussion rather than generic
// English: "puts" is bearish and "moon" is bullish here no matter what a
// general-purpose model thinks. Weights are in (0, 1]; the analyzer
// normalizes the final score into [-1, +1].

func bullishWords() map[string]float64 {
	return map[string]float64{
		"moon":       1.0,
		"mooning":    1.0,
		"tendies":    0.9,
		"bullish":    1.0,
		"bull":       0.8,
		"bulls":      0.7,
		"calls":      0.5,
		"rocket":     0.9,
		"squeeze":    0.6,
		"breakout":   0.6,
		"rip":        0.5,
		"ripping":    0.6,
		"pump":       0.5,
		"pumping":    0.6,
		"gains":      0.8,
		"gain":       0.6,
		"green":      0.5,
		"printing":   0.6,
		"undervalued": 0.7,
		"buy":        0.4,
		"buying":     0.4,
		"long":       0.4,
		"hold":       0.3,
		"holding":    0.3,
		"diamond":    0.4,
		"winner":     0.6,
		"winning":    0.6,
		"beat":       0.5,
		"beats":      0.5,
		"strong":     0.5,
		"growth":     0.5,
		"record":     0.5,
		"rally":      0.6,
		"soar":       0.7,
		"soaring":    0.8,
		"surge":      0.6,
		"love":       0.4,
		"like":       0.3,
		"good":       0.3,
		"great":      0.5,
		"up":         0.3,
		"upside":     0.5,
		"🚀":          1.0,
		"🌙":          0.8,
		"📈":          0.8,
		"💎":          0.5,
	}
}

func bearishWords() map[string]float64 {
	return map[string]float64{
		"bagholder":  1.0,
		"bagholders": 1.0,
		"bearish":    1.0,
		"bear":       0.8,
		"bears":      0.7,
		"puts":       0.5,
		"dump":       0.8,
		"dumping":    0.8,
		"crash":      0.9,
		"crashing":   0.9,
		"tank":       0.7,
		"tanking":    0.8,
		"drill":      0.6,
		"drilling":   0.6,
		"rug":        0.7,
		"rugpull":    1.0,
		"overvalued": 0.7,
		"bubble":     0.6,
		"scam":       0.8,
		"fraud":      0.9,
		"short":      0.4,
		"shorting":   0.5,
		"sell":       0.4,
		"selling":    0.4,
		"down":       0.3,
		"downside":   0.5,
		"red":        0.4,
		"loss":       0.6,
		"losses":     0.7,
		"lose":       0.5,
		"losing":     0.6,
		"nightmare":  0.8,
		"drop":       0.5,
		"dropping":   0.6,
		"plunge":     0.7,
		"plunging":   0.8,
		"worthless":  0.9,
		"rekt":       0.8,
		"guh":        0.6,
		"bad":        0.3,
		"terrible":   0.6,
		"weak":       0.4,
		"fear":       0.5,
		"panic":      0.6,
		"🐻":          0.7,
		"📉":          0.8,
		"💀":          0.6,
	}
}

// negators flip the polarity of a sentiment word within reach.
func negatorWords() map[string]bool {
	words := []string{
		"not", "no", "never", "dont", "don", "wont", "won", "isnt", "aint",
		"cant", "couldnt", "wouldnt", "shouldnt", "hardly",
		"without", "nothing",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// intensifiers scale the weight of the sentiment word that follows them.
func intensifierWords() map[string]float64 {
	return map[string]float64{
		"very":       1.5,
		"really":     1.3,
		"super":      1.5,
		"extremely":  2.0,
		"absolutely": 1.8,
		"insanely":   2.0,
		"massively":  1.8,
		"fucking":    1.8,
		"totally":    1.5,
		"slightly":   0.5,
		"kinda":      0.7,
		"somewhat":   0.7,
		"barely":     0.4,
	}
}
