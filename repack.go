package spine

// VertexSize is the unclipped vertex stride: x,y, r,g,b,a, u,v.
// Only positions are written at this stride; UVs come from the attachment.
const VertexSize = 2 + 4 + 2

// clipVertexSize is the vertex stride while a clip session is open. The
// clipper needs positions only.
const clipVertexSize = 2

// repackPositions writes the x,y of each stride-sized record in
// src[:floats] into dst as flat pairs, reusing dst's storage.
func repackPositions(dst, src []float32, floats, stride int) []float32 {
	n := floats / stride
	dst = resize(dst, n*2)
	for i, j := 0, 0; i < n; i, j = i+1, j+stride {
		dst[i*2] = src[j]
		dst[i*2+1] = src[j+1]
	}
	return dst
}

// repackRecords splits each stride-sized record in src[:floats] into a
// flat position pair and a flat u,v pair read at uvOffset.
func repackRecords(dstPos, dstUV, src []float32, floats, stride, uvOffset int) ([]float32, []float32) {
	n := floats / stride
	dstPos = resize(dstPos, n*2)
	dstUV = resize(dstUV, n*2)
	for i, j := 0, 0; i < n; i, j = i+1, j+stride {
		dstPos[i*2] = src[j]
		dstPos[i*2+1] = src[j+1]
		dstUV[i*2] = src[j+uvOffset]
		dstUV[i*2+1] = src[j+uvOffset+1]
	}
	return dstPos, dstUV
}

func resize(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}
