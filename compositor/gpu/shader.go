// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// mirrorBlitWGSL downsamples the submitted stereo target into the mirror
// texture. One invocation per mirror texel; the divisor comes in as a
// uniform so the same pipeline serves any mirror size.
const mirrorBlitWGSL = `
struct Params {
    divisor: u32,
    _pad0: u32,
    _pad1: u32,
    _pad2: u32,
}

@group(0) @binding(0) var src: texture_2d<f32>;
@group(0) @binding(1) var dst: texture_storage_2d<rgba8unorm, write>;
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(8, 8)
fn mirror_blit(@builtin(global_invocation_id) gid: vec3<u32>) {
    let dims = textureDimensions(dst);
    if (gid.x >= dims.x || gid.y >= dims.y) {
        return;
    }
    let src_xy = vec2<i32>(gid.xy * params.divisor);
    let texel = textureLoad(src, src_xy, 0);
    textureStore(dst, vec2<i32>(gid.xy), texel);
}
`

// compileMirrorBlit compiles the mirror-blit shader to SPIR-V words.
func compileMirrorBlit() ([]uint32, error) {
	spirvBytes, err := naga.Compile(mirrorBlitWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: mirror shader compilation failed: %w", err)
	}
	return spirvWords(spirvBytes), nil
}

// spirvWords converts SPIR-V bytes to little-endian 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}
