//go:build android

package game

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"golang.org/x/mobile/gl"

	"soundbubbles/internal/render"
)

const shapeVertSrcMobile = `
attribute vec2 aPos;
attribute vec4 aColor;
uniform vec2 uResolution;
varying vec4 vColor;
void main() {
  vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  vColor = aColor;
}`

const shapeFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
void main() {
  gl_FragColor = vColor;
}`

const texVertSrcMobile = `
attribute vec2 aPos;
attribute vec2 aUV;
attribute vec4 aColor;
uniform vec2 uResolution;
varying vec2 vUV;
varying vec4 vColor;
void main() {
  vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  vUV = aUV;
  vColor = aColor;
}`

const texFragSrcMobile = `
precision mediump float;
uniform sampler2D uTex;
varying vec2 vUV;
varying vec4 vColor;
void main() {
  vec4 t = texture2D(uTex, vUV);
  if (t.a < 0.01) discard;
  gl_FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}`

const sphereVertSrcMobile = `
attribute vec3 aPos;
attribute vec3 aNormal;
uniform mat4 uViewProj;
uniform mat4 uModel;
varying vec3 vWorld;
varying vec3 vNormal;
void main() {
  vec4 world = uModel * vec4(aPos, 1.0);
  vWorld = world.xyz;
  vNormal = (uModel * vec4(aNormal, 0.0)).xyz;
  gl_Position = uViewProj * world;
}`

const sphereFragSrcMobile = `
precision mediump float;
uniform vec4 uColor;
uniform vec3 uEye;
uniform vec3 uAmbient;
uniform vec3 uLightColor[2];
uniform vec3 uLightDir[2];
uniform float uSpecular;
uniform float uShininess;
uniform float uEmissive;
varying vec3 vWorld;
varying vec3 vNormal;
void main() {
  vec3 n = normalize(vNormal);
  vec3 v = normalize(uEye - vWorld);
  vec3 diffuse = uAmbient;
  vec3 spec = vec3(0.0);
  for (int i = 0; i < 2; i++) {
    vec3 l = -normalize(uLightDir[i]);
    diffuse += uLightColor[i] * max(dot(n, l), 0.0);
    vec3 r = reflect(-l, n);
    spec += uLightColor[i] * pow(max(dot(r, v), 0.0), uShininess);
  }
  vec3 rgb = uColor.rgb * (diffuse + uEmissive) + spec * uSpecular;
  gl_FragColor = vec4(min(rgb, vec3(1.0)), uColor.a);
}`

// mobileRenderer is the GLES2 counterpart of Renderer. GLES2 has no vertex
// array objects, so attribute pointers are bound on every draw.
type mobileRenderer struct {
	shapeProg  gl.Program
	shapePos   gl.Attrib
	shapeColor gl.Attrib
	shapeRes   gl.Uniform

	texProg  gl.Program
	texPos   gl.Attrib
	texUV    gl.Attrib
	texColor gl.Attrib
	texRes   gl.Uniform
	texUnit  gl.Uniform

	sphereProg   gl.Program
	spherePos    gl.Attrib
	sphereNormal gl.Attrib
	uViewProj    gl.Uniform
	uModel       gl.Uniform
	uColor       gl.Uniform
	uEye         gl.Uniform

	stream      gl.Buffer
	sphereVBO   gl.Buffer
	sphereIBO   gl.Buffer
	sphereCount int

	sansTex   gl.Texture
	monoTex   gl.Texture
	avatarTex []gl.Texture
	hasFonts  bool
}

func newMobileRenderer(glctx gl.Context, fonts *render.Fonts, avatars []*image.NRGBA) (*mobileRenderer, error) {
	r := &mobileRenderer{}
	var err error
	if r.shapeProg, err = linkProgram(glctx, shapeVertSrcMobile, shapeFragSrcMobile); err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	if r.texProg, err = linkProgram(glctx, texVertSrcMobile, texFragSrcMobile); err != nil {
		glctx.DeleteProgram(r.shapeProg)
		return nil, fmt.Errorf("texture program: %w", err)
	}
	if r.sphereProg, err = linkProgram(glctx, sphereVertSrcMobile, sphereFragSrcMobile); err != nil {
		glctx.DeleteProgram(r.shapeProg)
		glctx.DeleteProgram(r.texProg)
		return nil, fmt.Errorf("sphere program: %w", err)
	}

	r.shapePos = glctx.GetAttribLocation(r.shapeProg, "aPos")
	r.shapeColor = glctx.GetAttribLocation(r.shapeProg, "aColor")
	r.shapeRes = glctx.GetUniformLocation(r.shapeProg, "uResolution")

	r.texPos = glctx.GetAttribLocation(r.texProg, "aPos")
	r.texUV = glctx.GetAttribLocation(r.texProg, "aUV")
	r.texColor = glctx.GetAttribLocation(r.texProg, "aColor")
	r.texRes = glctx.GetUniformLocation(r.texProg, "uResolution")
	r.texUnit = glctx.GetUniformLocation(r.texProg, "uTex")

	r.spherePos = glctx.GetAttribLocation(r.sphereProg, "aPos")
	r.sphereNormal = glctx.GetAttribLocation(r.sphereProg, "aNormal")
	r.uViewProj = glctx.GetUniformLocation(r.sphereProg, "uViewProj")
	r.uModel = glctx.GetUniformLocation(r.sphereProg, "uModel")
	r.uColor = glctx.GetUniformLocation(r.sphereProg, "uColor")
	r.uEye = glctx.GetUniformLocation(r.sphereProg, "uEye")

	glctx.UseProgram(r.sphereProg)
	a := render.Ambient
	glctx.Uniform3f(glctx.GetUniformLocation(r.sphereProg, "uAmbient"), a[0], a[1], a[2])
	var colors, dirs []float32
	for _, l := range render.Lights {
		colors = append(colors, l.Color[:]...)
		dirs = append(dirs, l.Dir[:]...)
	}
	glctx.Uniform3fv(glctx.GetUniformLocation(r.sphereProg, "uLightColor"), colors)
	glctx.Uniform3fv(glctx.GetUniformLocation(r.sphereProg, "uLightDir"), dirs)
	glctx.Uniform1f(glctx.GetUniformLocation(r.sphereProg, "uSpecular"), render.Specular)
	glctx.Uniform1f(glctx.GetUniformLocation(r.sphereProg, "uShininess"), render.Shininess)
	glctx.Uniform1f(glctx.GetUniformLocation(r.sphereProg, "uEmissive"), render.Emissive)

	mesh := render.UnitSphere(render.SphereDetailX, render.SphereDetailY)
	r.sphereVBO = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(mesh.Verts), gl.STATIC_DRAW)
	r.sphereIBO = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereIBO)
	glctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, u16bytes(mesh.Indices), gl.STATIC_DRAW)
	r.sphereCount = len(mesh.Indices)

	r.stream = glctx.CreateBuffer()

	glctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if fonts != nil {
		r.sansTex = uploadTextureMobile(glctx, fonts.Sans.Image)
		r.monoTex = uploadTextureMobile(glctx, fonts.Mono.Image)
		r.hasFonts = true
	}
	for _, img := range avatars {
		r.avatarTex = append(r.avatarTex, uploadTextureMobile(glctx, img))
	}
	return r, nil
}

func uploadTextureMobile(glctx gl.Context, img *image.NRGBA) gl.Texture {
	tex := glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := img.Bounds()
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), b.Dx(), b.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	return tex
}

func (r *mobileRenderer) destroy(glctx gl.Context) {
	for _, b := range []gl.Buffer{r.stream, r.sphereVBO, r.sphereIBO} {
		glctx.DeleteBuffer(b)
	}
	for _, p := range []gl.Program{r.shapeProg, r.texProg, r.sphereProg} {
		glctx.DeleteProgram(p)
	}
	if r.hasFonts {
		glctx.DeleteTexture(r.sansTex)
		glctx.DeleteTexture(r.monoTex)
	}
	for _, t := range r.avatarTex {
		glctx.DeleteTexture(t)
	}
}

func (r *mobileRenderer) texture(id render.TexID) (gl.Texture, bool) {
	switch {
	case id == render.TexSans:
		return r.sansTex, r.hasFonts
	case id == render.TexMono:
		return r.monoTex, r.hasFonts
	case id >= 0 && int(id) < len(r.avatarTex):
		return r.avatarTex[id], true
	}
	return gl.Texture{}, false
}

func (r *mobileRenderer) draw(glctx gl.Context, dl *render.DrawList, fbW, fbH int) {
	glctx.Viewport(0, 0, fbW, fbH)
	c := dl.Clear
	glctx.ClearColor(c.R, c.G, c.B, 1)
	glctx.DepthMask(true)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glctx.FrontFace(gl.CW)
	glctx.CullFace(gl.BACK)

	resW, resH := float32(dl.W), float32(dl.H)
	glctx.UseProgram(r.shapeProg)
	glctx.Uniform2f(r.shapeRes, resW, resH)
	glctx.UseProgram(r.texProg)
	glctx.Uniform2f(r.texRes, resW, resH)
	glctx.Uniform1i(r.texUnit, 0)
	glctx.UseProgram(r.sphereProg)
	vp := dl.Camera.ViewProj
	glctx.UniformMatrix4fv(r.uViewProj, vp[:])
	glctx.Uniform3f(r.uEye, 0, 0, float32(dl.Camera.EyeZ))

	for _, pass := range dl.Passes {
		if pass.Depth {
			glctx.Enable(gl.DEPTH_TEST)
			glctx.Enable(gl.CULL_FACE)
		} else {
			glctx.Disable(gl.DEPTH_TEST)
			glctx.Disable(gl.CULL_FACE)
		}
		for i := range pass.Cmds {
			r.drawCmd(glctx, &pass.Cmds[i])
		}
	}
	glctx.Disable(gl.DEPTH_TEST)
	glctx.Disable(gl.CULL_FACE)
	glctx.Disable(gl.BLEND)
}

func (r *mobileRenderer) drawCmd(glctx gl.Context, cmd *render.Cmd) {
	switch cmd.Kind {
	case render.CmdShapes:
		if len(cmd.Verts) == 0 {
			return
		}
		glctx.UseProgram(r.shapeProg)
		glctx.BindBuffer(gl.ARRAY_BUFFER, r.stream)
		glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(cmd.Verts), gl.STREAM_DRAW)
		stride := render.ShapeStride * 4
		glctx.EnableVertexAttribArray(r.shapePos)
		glctx.VertexAttribPointer(r.shapePos, 2, gl.FLOAT, false, stride, 0)
		glctx.EnableVertexAttribArray(r.shapeColor)
		glctx.VertexAttribPointer(r.shapeColor, 4, gl.FLOAT, false, stride, 2*4)
		glctx.DrawArrays(gl.TRIANGLES, 0, cmd.VertexCount())
		glctx.DisableVertexAttribArray(r.shapePos)
		glctx.DisableVertexAttribArray(r.shapeColor)

	case render.CmdTextured:
		tex, ok := r.texture(cmd.Tex)
		if !ok || len(cmd.Verts) == 0 {
			return
		}
		glctx.UseProgram(r.texProg)
		glctx.ActiveTexture(gl.TEXTURE0)
		glctx.BindTexture(gl.TEXTURE_2D, tex)
		glctx.BindBuffer(gl.ARRAY_BUFFER, r.stream)
		glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(cmd.Verts), gl.STREAM_DRAW)
		stride := render.TexturedStride * 4
		glctx.EnableVertexAttribArray(r.texPos)
		glctx.VertexAttribPointer(r.texPos, 2, gl.FLOAT, false, stride, 0)
		glctx.EnableVertexAttribArray(r.texUV)
		glctx.VertexAttribPointer(r.texUV, 2, gl.FLOAT, false, stride, 2*4)
		glctx.EnableVertexAttribArray(r.texColor)
		glctx.VertexAttribPointer(r.texColor, 4, gl.FLOAT, false, stride, 4*4)
		glctx.DrawArrays(gl.TRIANGLES, 0, cmd.VertexCount())
		glctx.DisableVertexAttribArray(r.texPos)
		glctx.DisableVertexAttribArray(r.texUV)
		glctx.DisableVertexAttribArray(r.texColor)

	case render.CmdSphere:
		s := cmd.Sphere
		glctx.UseProgram(r.sphereProg)
		glctx.UniformMatrix4fv(r.uModel, s.Model[:])
		glctx.Uniform4f(r.uColor, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
		glctx.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
		glctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereIBO)
		glctx.EnableVertexAttribArray(r.spherePos)
		glctx.VertexAttribPointer(r.spherePos, 3, gl.FLOAT, false, 6*4, 0)
		glctx.EnableVertexAttribArray(r.sphereNormal)
		glctx.VertexAttribPointer(r.sphereNormal, 3, gl.FLOAT, false, 6*4, 3*4)
		glctx.DrawElements(gl.TRIANGLES, r.sphereCount, gl.UNSIGNED_SHORT, 0)
		glctx.DisableVertexAttribArray(r.spherePos)
		glctx.DisableVertexAttribArray(r.sphereNormal)
	}
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func u16bytes(vals []uint16) []byte {
	out := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}
