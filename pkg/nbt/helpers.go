package nbt

// Accessors over decoded compounds. Each helper checks that the key exists
// and that the value carries the exact wire width asked for; a Short is
// never served where an Int was requested.

// GetString retrieves an owned string from a view compound. The bytes are
// copied out, so the result is safe to keep past the input buffer.
func GetString(m map[string]ValueView, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	b, ok := v.Value.([]byte)
	if !ok {
		return "", false
	}
	return string(b), true
}

// GetByte retrieves a Byte value from a view compound.
func GetByte(m map[string]ValueView, key string) (int8, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	b, ok := v.Value.(int8)
	return b, ok
}

// GetShort retrieves a Short value from a view compound.
func GetShort(m map[string]ValueView, key string) (int16, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	s, ok := v.Value.(int16)
	return s, ok
}

// GetInt retrieves an Int value from a view compound.
func GetInt(m map[string]ValueView, key string) (int32, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	i, ok := v.Value.(int32)
	return i, ok
}

// GetLong retrieves a Long value from a view compound.
func GetLong(m map[string]ValueView, key string) (int64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	l, ok := v.Value.(int64)
	return l, ok
}

// GetFloat retrieves a Float value from a view compound.
func GetFloat(m map[string]ValueView, key string) (float32, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.Value.(float32)
	return f, ok
}

// GetDouble retrieves a Double value from a view compound.
func GetDouble(m map[string]ValueView, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.Value.(float64)
	return f, ok
}

// GetCompound retrieves a nested compound from a view compound.
func GetCompound(m map[string]ValueView, key string) (map[string]ValueView, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	c, ok := v.Value.(map[string]ValueView)
	return c, ok
}

// GetList retrieves a list from a view compound.
func GetList(m map[string]ValueView, key string) ([]ValueView, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	l, ok := v.Value.([]ValueView)
	return l, ok
}

// GetByteArray retrieves a ByteArray view from a view compound.
func GetByteArray(m map[string]ValueView, key string) (ByteArrayView, bool) {
	v, ok := m[key]
	if !ok {
		return ByteArrayView{}, false
	}
	a, ok := v.Value.(ByteArrayView)
	return a, ok
}

// GetIntArray retrieves an IntArray view from a view compound.
func GetIntArray(m map[string]ValueView, key string) (IntArrayView, bool) {
	v, ok := m[key]
	if !ok {
		return IntArrayView{}, false
	}
	a, ok := v.Value.(IntArrayView)
	return a, ok
}

// GetLongArray retrieves a LongArray view from a view compound.
func GetLongArray(m map[string]ValueView, key string) (LongArrayView, bool) {
	v, ok := m[key]
	if !ok {
		return LongArrayView{}, false
	}
	a, ok := v.Value.(LongArrayView)
	return a, ok
}
