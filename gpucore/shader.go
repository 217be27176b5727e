package gpucore

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/mesh.wgsl
var meshShaderWGSL string

// ShaderSource returns the WGSL source of the mesh shader.
func ShaderSource() string {
	return meshShaderWGSL
}

// CompileShader compiles the mesh shader to SPIR-V bytes.
func CompileShader() ([]byte, error) {
	spirv, err := naga.Compile(meshShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpucore: compile mesh shader: %w", err)
	}
	return spirv, nil
}

// SPIRVWords converts little-endian SPIR-V bytes into 32-bit words as
// HAL shader module descriptors expect them.
func SPIRVWords(spirv []byte) ([]uint32, error) {
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpucore: SPIR-V length %d is not a multiple of 4", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}
