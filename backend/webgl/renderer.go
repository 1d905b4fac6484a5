//go:build js && wasm

// Package webgl runs the gui in a browser: a WebGL1 renderer for draw lists
// and a canvas host translating DOM events.
package webgl

import (
	"errors"
	"fmt"
	"syscall/js"
	"unsafe"

	gui "github.com/go-theft-auto/gui-examples"
)

var ErrNoWebGL = errors.New("webgl: context unavailable")

const vertexShaderSource = `
attribute vec2 aPos;
attribute vec2 aTexCoord;
attribute vec4 aColor;
uniform mat4 projection;
varying vec2 vTexCoord;
varying vec4 vColor;
void main() {
    vTexCoord = aTexCoord;
    vColor = aColor;
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
`

const fragmentShaderSource = `
precision mediump float;
uniform sampler2D atlas;
uniform bool useTexture;
varying vec2 vTexCoord;
varying vec4 vColor;
void main() {
    if (useTexture) {
        gl_FragColor = vec4(vColor.rgb, vColor.a * texture2D(atlas, vTexCoord).r);
    } else {
        gl_FragColor = vColor;
    }
}
`

var vertexStride = int(unsafe.Sizeof(gui.Vertex{}))

// Renderer draws gui draw lists through a WebGLRenderingContext.
type Renderer struct {
	gl js.Value

	program   js.Value
	vbo, ebo  js.Value
	projLoc   js.Value
	texLoc    js.Value
	useTexLoc js.Value
	attrPos   int
	attrUV    int
	attrColor int

	width, height int
	scale         float32

	textures map[uint32]glTexture
	nextID   uint32
	fontTex  uint32

	vtxBytes js.Value
	idxBytes js.Value
}

type glTexture struct {
	handle        js.Value
	width, height int
}

// NewRenderer compiles the shaders and uploads the built-in font.
func NewRenderer(gl js.Value, width, height int) (*Renderer, error) {
	if gl.IsUndefined() || gl.IsNull() {
		return nil, ErrNoWebGL
	}
	r := &Renderer{
		gl:       gl,
		width:    width,
		height:   height,
		scale:    1,
		textures: make(map[uint32]glTexture),
	}

	var err error
	r.program, err = r.createProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r.projLoc = gl.Call("getUniformLocation", r.program, "projection")
	r.texLoc = gl.Call("getUniformLocation", r.program, "atlas")
	r.useTexLoc = gl.Call("getUniformLocation", r.program, "useTexture")
	r.attrPos = gl.Call("getAttribLocation", r.program, "aPos").Int()
	r.attrUV = gl.Call("getAttribLocation", r.program, "aTexCoord").Int()
	r.attrColor = gl.Call("getAttribLocation", r.program, "aColor").Int()
	r.vbo = gl.Call("createBuffer")
	r.ebo = gl.Call("createBuffer")

	w, h, pix := gui.BuiltinFontAtlas()
	r.fontTex, err = r.createTexture(w, h, pix, gl.Get("NEAREST"))
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize sets the display size in CSS pixels.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// SetScale sets canvas pixels per CSS pixel.
func (r *Renderer) SetScale(scale float32) {
	if scale > 0 {
		r.scale = scale
	}
}

func (r *Renderer) CreateAlphaTexture(width, height int, pixels []byte) (uint32, error) {
	return r.createTexture(width, height, pixels, r.gl.Get("LINEAR"))
}

func (r *Renderer) UpdateAlphaTexture(id uint32, width, height int, pixels []byte) error {
	tex, ok := r.textures[id]
	if !ok {
		return fmt.Errorf("webgl: update unknown texture %d", id)
	}
	if tex.width != width || tex.height != height || len(pixels) < width*height {
		return fmt.Errorf("webgl: update texture %d to %dx%d with %d bytes", id, width, height, len(pixels))
	}
	gl := r.gl
	gl.Call("bindTexture", gl.Get("TEXTURE_2D"), tex.handle)
	gl.Call("pixelStorei", gl.Get("UNPACK_ALIGNMENT"), 1)
	gl.Call("texSubImage2D", gl.Get("TEXTURE_2D"), 0, 0, 0, width, height,
		gl.Get("LUMINANCE"), gl.Get("UNSIGNED_BYTE"), toUint8Array(pixels[:width*height]))
	return nil
}

func (r *Renderer) createTexture(width, height int, pixels []byte, filter js.Value) (uint32, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return 0, fmt.Errorf("webgl: texture %dx%d with %d bytes", width, height, len(pixels))
	}
	gl := r.gl
	handle := gl.Call("createTexture")
	target := gl.Get("TEXTURE_2D")
	gl.Call("bindTexture", target, handle)
	gl.Call("texParameteri", target, gl.Get("TEXTURE_MIN_FILTER"), filter)
	gl.Call("texParameteri", target, gl.Get("TEXTURE_MAG_FILTER"), filter)
	gl.Call("texParameteri", target, gl.Get("TEXTURE_WRAP_S"), gl.Get("CLAMP_TO_EDGE"))
	gl.Call("texParameteri", target, gl.Get("TEXTURE_WRAP_T"), gl.Get("CLAMP_TO_EDGE"))
	gl.Call("pixelStorei", gl.Get("UNPACK_ALIGNMENT"), 1)
	gl.Call("texImage2D", target, 0, gl.Get("LUMINANCE"), width, height, 0,
		gl.Get("LUMINANCE"), gl.Get("UNSIGNED_BYTE"), toUint8Array(pixels[:width*height]))

	r.nextID++
	r.textures[r.nextID] = glTexture{handle: handle, width: width, height: height}
	return r.nextID, nil
}

// Render draws dl onto the current drawing buffer.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	gl := r.gl
	fbWidth := float32(r.width) * r.scale
	fbHeight := float32(r.height) * r.scale

	gl.Call("enable", gl.Get("BLEND"))
	gl.Call("blendFunc", gl.Get("SRC_ALPHA"), gl.Get("ONE_MINUS_SRC_ALPHA"))
	gl.Call("disable", gl.Get("CULL_FACE"))
	gl.Call("disable", gl.Get("DEPTH_TEST"))
	gl.Call("enable", gl.Get("SCISSOR_TEST"))

	gl.Call("useProgram", r.program)
	proj := orthoMatrix(float32(r.width), float32(r.height))
	gl.Call("uniformMatrix4fv", r.projLoc, false, toFloat32Array(proj[:]))
	gl.Call("activeTexture", gl.Get("TEXTURE0"))
	gl.Call("uniform1i", r.texLoc, 0)

	vtx := unsafe.Slice((*byte)(unsafe.Pointer(&dl.VtxBuffer[0])), len(dl.VtxBuffer)*vertexStride)
	idx := unsafe.Slice((*byte)(unsafe.Pointer(&dl.IdxBuffer[0])), len(dl.IdxBuffer)*2)
	r.vtxBytes = reuseUint8Array(r.vtxBytes, vtx)
	r.idxBytes = reuseUint8Array(r.idxBytes, idx)

	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), r.vbo)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), r.vtxBytes.Call("subarray", 0, len(vtx)), gl.Get("STREAM_DRAW"))
	gl.Call("bindBuffer", gl.Get("ELEMENT_ARRAY_BUFFER"), r.ebo)
	gl.Call("bufferData", gl.Get("ELEMENT_ARRAY_BUFFER"), r.idxBytes.Call("subarray", 0, len(idx)), gl.Get("STREAM_DRAW"))

	gl.Call("enableVertexAttribArray", r.attrPos)
	gl.Call("enableVertexAttribArray", r.attrUV)
	gl.Call("enableVertexAttribArray", r.attrColor)

	textureUnit := gl.Get("TEXTURE_2D")
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorBox(cmd.ClipRect, r.scale, fbWidth, fbHeight)
		if !ok {
			continue
		}
		gl.Call("scissor", x, y, w, h)

		if cmd.TextureID != 0 {
			tex, ok := r.textures[cmd.TextureID]
			if !ok {
				return fmt.Errorf("webgl: draw with unknown texture %d", cmd.TextureID)
			}
			gl.Call("bindTexture", textureUnit, tex.handle)
			gl.Call("uniform1i", r.useTexLoc, 1)
		} else {
			gl.Call("uniform1i", r.useTexLoc, 0)
		}

		// WebGL1 has no base vertex, so the attributes move instead.
		base := int(cmd.VertexOffset) * vertexStride
		gl.Call("vertexAttribPointer", r.attrPos, 2, gl.Get("FLOAT"), false, vertexStride, base)
		gl.Call("vertexAttribPointer", r.attrUV, 2, gl.Get("FLOAT"), false, vertexStride, base+8)
		gl.Call("vertexAttribPointer", r.attrColor, 4, gl.Get("UNSIGNED_BYTE"), true, vertexStride, base+16)
		gl.Call("drawElements", gl.Get("TRIANGLES"), int(cmd.ElemCount), gl.Get("UNSIGNED_SHORT"), int(cmd.IndexOffset)*2)
	}

	gl.Call("disable", gl.Get("SCISSOR_TEST"))
	return nil
}

func (r *Renderer) createProgram(vertexSource, fragmentSource string) (js.Value, error) {
	gl := r.gl
	vs, err := r.compileShader(gl.Get("VERTEX_SHADER"), vertexSource)
	if err != nil {
		return js.Null(), fmt.Errorf("webgl: vertex shader: %w", err)
	}
	defer gl.Call("deleteShader", vs)
	fs, err := r.compileShader(gl.Get("FRAGMENT_SHADER"), fragmentSource)
	if err != nil {
		return js.Null(), fmt.Errorf("webgl: fragment shader: %w", err)
	}
	defer gl.Call("deleteShader", fs)

	program := gl.Call("createProgram")
	gl.Call("attachShader", program, vs)
	gl.Call("attachShader", program, fs)
	gl.Call("linkProgram", program)
	if !gl.Call("getProgramParameter", program, gl.Get("LINK_STATUS")).Bool() {
		log := gl.Call("getProgramInfoLog", program).String()
		gl.Call("deleteProgram", program)
		return js.Null(), fmt.Errorf("webgl: link: %s", log)
	}
	return program, nil
}

func (r *Renderer) compileShader(kind js.Value, source string) (js.Value, error) {
	gl := r.gl
	shader := gl.Call("createShader", kind)
	gl.Call("shaderSource", shader, source)
	gl.Call("compileShader", shader)
	if !gl.Call("getShaderParameter", shader, gl.Get("COMPILE_STATUS")).Bool() {
		log := gl.Call("getShaderInfoLog", shader).String()
		gl.Call("deleteShader", shader)
		return js.Null(), fmt.Errorf("compile: %s", log)
	}
	return shader, nil
}

func orthoMatrix(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

// reuseUint8Array copies b into arr, growing arr when it is too small.
func reuseUint8Array(arr js.Value, b []byte) js.Value {
	if arr.IsUndefined() || arr.Get("length").Int() < len(b) {
		arr = js.Global().Get("Uint8Array").New(max(len(b), 1<<16))
	}
	js.CopyBytesToJS(arr, b)
	return arr
}

func toFloat32Array(f []float32) js.Value {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4)
	return js.Global().Get("Float32Array").New(toUint8Array(b).Get("buffer"))
}

var (
	_ gui.Renderer        = (*Renderer)(nil)
	_ gui.TextureUploader = (*Renderer)(nil)
)
