package generator

// sameKey is the value every Same key takes.
const sameKey = 42

func fillSame[K Key](keys []K) {
	for i := range keys {
		keys[i] = sameKey
	}
}
