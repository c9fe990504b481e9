//go:build !android

package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"soundbubbles/internal/render"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer replays a render.DrawList with three programs: flat shapes,
// textured quads (glyphs and avatars) and the lit sphere.
type Renderer struct {
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	uShapeRes int32

	texProg uint32
	texVAO  uint32
	texVBO  uint32
	uTexRes int32
	uTex    int32

	sphereProg  uint32
	sphereVAO   uint32
	sphereVBO   uint32
	sphereIBO   uint32
	sphereCount int32

	uViewProj   int32
	uModel      int32
	uColor      int32
	uEye        int32
	uAmbient    int32
	uLightColor int32
	uLightDir   int32
	uSpecular   int32
	uShininess  int32
	uEmissive   int32

	sansTex   uint32
	monoTex   uint32
	avatarTex []uint32
}

func NewRenderer(fonts *render.Fonts, avatars []*image.NRGBA) (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	texProg, err := linkProgram(texVertSrc, texFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("texture program: %w", err)
	}
	sphereProg, err := linkProgram(sphereVertSrc, sphereFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		gl.DeleteProgram(texProg)
		return nil, fmt.Errorf("sphere program: %w", err)
	}

	r := &Renderer{
		shapeProg:  shapeProg,
		texProg:    texProg,
		sphereProg: sphereProg,
	}

	// Shape VAO/VBO: per-vertex pos(2) + color(4).
	r.shapeVAO, r.shapeVBO = streamVAO(render.ShapeStride, []attrib{{0, 2, 0}, {1, 4, 2}})
	gl.UseProgram(shapeProg)
	r.uShapeRes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))

	// Textured VAO/VBO: per-vertex pos(2) + uv(2) + color(4).
	r.texVAO, r.texVBO = streamVAO(render.TexturedStride, []attrib{{0, 2, 0}, {1, 2, 2}, {2, 4, 4}})
	gl.UseProgram(texProg)
	r.uTexRes = gl.GetUniformLocation(texProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(texProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	// Sphere mesh: static VBO + IBO, pos(3) + normal(3).
	mesh := render.UnitSphere(render.SphereDetailX, render.SphereDetailY)
	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.GenBuffers(1, &r.sphereVBO)
	gl.GenBuffers(1, &r.sphereIBO)
	gl.BindVertexArray(r.sphereVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Verts)*4, gl.Ptr(mesh.Verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, glOffset(3*4))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereIBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	r.sphereCount = int32(len(mesh.Indices))

	gl.UseProgram(sphereProg)
	r.uViewProj = gl.GetUniformLocation(sphereProg, gl.Str("uViewProj\x00"))
	r.uModel = gl.GetUniformLocation(sphereProg, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(sphereProg, gl.Str("uColor\x00"))
	r.uEye = gl.GetUniformLocation(sphereProg, gl.Str("uEye\x00"))
	r.uAmbient = gl.GetUniformLocation(sphereProg, gl.Str("uAmbient\x00"))
	r.uLightColor = gl.GetUniformLocation(sphereProg, gl.Str("uLightColor\x00"))
	r.uLightDir = gl.GetUniformLocation(sphereProg, gl.Str("uLightDir\x00"))
	r.uSpecular = gl.GetUniformLocation(sphereProg, gl.Str("uSpecular\x00"))
	r.uShininess = gl.GetUniformLocation(sphereProg, gl.Str("uShininess\x00"))
	r.uEmissive = gl.GetUniformLocation(sphereProg, gl.Str("uEmissive\x00"))

	// The light rig never changes.
	a := render.Ambient
	gl.Uniform3f(r.uAmbient, a[0], a[1], a[2])
	var colors, dirs [6]float32
	for i, l := range render.Lights {
		copy(colors[i*3:], l.Color[:])
		copy(dirs[i*3:], l.Dir[:])
	}
	gl.Uniform3fv(r.uLightColor, 2, &colors[0])
	gl.Uniform3fv(r.uLightDir, 2, &dirs[0])
	gl.Uniform1f(r.uSpecular, render.Specular)
	gl.Uniform1f(r.uShininess, render.Shininess)
	gl.Uniform1f(r.uEmissive, render.Emissive)
	gl.BindVertexArray(0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if fonts != nil {
		r.sansTex = uploadTexture(fonts.Sans.Image)
		r.monoTex = uploadTexture(fonts.Mono.Image)
	}
	for _, img := range avatars {
		r.avatarTex = append(r.avatarTex, uploadTexture(img))
	}
	return r, nil
}

type attrib struct {
	index  uint32
	size   int32
	offset int // floats
}

func streamVAO(strideFloats int, attribs []attrib) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	stride := int32(strideFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, InitialVertexCap*4, nil, gl.STREAM_DRAW)
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.index)
		gl.VertexAttribPointer(a.index, a.size, gl.FLOAT, false, stride, glOffset(a.offset*4))
	}
	gl.BindVertexArray(0)
	return vao, vbo
}

func uploadTexture(img *image.NRGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (r *Renderer) texture(id render.TexID) (uint32, bool) {
	switch {
	case id == render.TexSans:
		return r.sansTex, r.sansTex != 0
	case id == render.TexMono:
		return r.monoTex, r.monoTex != 0
	case id >= 0 && int(id) < len(r.avatarTex):
		return r.avatarTex[id], true
	}
	return 0, false
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.texVBO, r.sphereVBO, r.sphereIBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.texVAO, r.sphereVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.texProg, r.sphereProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	texs := append([]uint32{r.sansTex, r.monoTex}, r.avatarTex...)
	for _, id := range texs {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// Draw replays dl into the current framebuffer of fbW x fbH pixels. Vertex
// positions are in dl's logical W x H space, so HiDPI scaling happens here.
func (r *Renderer) Draw(dl *render.DrawList, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	c := dl.Clear
	gl.ClearColor(c.R, c.G, c.B, 1)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.FrontFace(gl.CW) // the camera flips y, which mirrors the mesh winding
	gl.CullFace(gl.BACK)

	resW, resH := float32(dl.W), float32(dl.H)
	gl.UseProgram(r.shapeProg)
	gl.Uniform2f(r.uShapeRes, resW, resH)
	gl.UseProgram(r.texProg)
	gl.Uniform2f(r.uTexRes, resW, resH)
	gl.UseProgram(r.sphereProg)
	vp := dl.Camera.ViewProj
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &vp[0])
	gl.Uniform3f(r.uEye, 0, 0, float32(dl.Camera.EyeZ))

	for _, pass := range dl.Passes {
		if pass.Depth {
			gl.Enable(gl.DEPTH_TEST)
			gl.Enable(gl.CULL_FACE)
		} else {
			gl.Disable(gl.DEPTH_TEST)
			gl.Disable(gl.CULL_FACE)
		}
		for i := range pass.Cmds {
			r.drawCmd(&pass.Cmds[i])
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawCmd(cmd *render.Cmd) {
	switch cmd.Kind {
	case render.CmdShapes:
		if len(cmd.Verts) == 0 {
			return
		}
		gl.UseProgram(r.shapeProg)
		gl.BindVertexArray(r.shapeVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(cmd.Verts)*4, gl.Ptr(cmd.Verts), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(cmd.VertexCount()))

	case render.CmdTextured:
		tex, ok := r.texture(cmd.Tex)
		if !ok || len(cmd.Verts) == 0 {
			return
		}
		gl.UseProgram(r.texProg)
		gl.BindVertexArray(r.texVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.texVBO)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BufferData(gl.ARRAY_BUFFER, len(cmd.Verts)*4, gl.Ptr(cmd.Verts), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(cmd.VertexCount()))

	case render.CmdSphere:
		s := cmd.Sphere
		gl.UseProgram(r.sphereProg)
		gl.BindVertexArray(r.sphereVAO)
		gl.UniformMatrix4fv(r.uModel, 1, false, &s.Model[0])
		gl.Uniform4f(r.uColor, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
		gl.DrawElements(gl.TRIANGLES, r.sphereCount, gl.UNSIGNED_SHORT, nil)
	}
}
