package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/dschenker/flycam/internal/camera"
	"github.com/dschenker/flycam/internal/scene"
)

const vertexShaderSource = `
#version 410
layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;
layout(location = 2) in vec2 texCoords;
out vec4 Color;
out vec2 TexCoords;
uniform mat4 camera;
uniform mat4 model;
void main() {
	gl_Position = camera * model * vec4(position, 1.0);
	Color = color;
	TexCoords = texCoords;
}
`

const fragmentShaderSource = `
#version 410
in vec4 Color;
in vec2 TexCoords;
out vec4 outColor;
uniform sampler2D tex;
void main() {
	outColor = Color * texture(tex, TexCoords);
}
`

// GPUMesh is a mesh uploaded to a vertex array object.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	texture       uint32
}

// Upload copies m into GPU buffers.
func Upload(m *scene.Mesh) (*GPUMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := &GPUMesh{count: int32(len(m.Indices)), mode: gl.TRIANGLES}
	if m.Primitive == scene.Lines {
		g.mode = gl.LINES
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)

	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	floatSize := unsafe.Sizeof(float32(0))
	stride := int32(scene.Stride * floatSize)

	gl.VertexAttribPointer(0, scene.PositionSize, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, scene.ColorSize, gl.FLOAT, false, stride, uintptr(scene.ColorOffset)*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, scene.UVSize, gl.FLOAT, false, stride, uintptr(scene.UVOffset)*floatSize)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return g, nil
}

func (g *GPUMesh) Delete() {
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
}

// Renderer draws scene instances with a single program.
type Renderer struct {
	program   uint32
	cameraLoc int32
	modelLoc  int32
	texLoc    int32

	white  uint32
	meshes map[*scene.Mesh]*GPUMesh
}

func NewRenderer() (*Renderer, error) {
	program, err := NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		program:   program,
		cameraLoc: gl.GetUniformLocation(program, gl.Str("camera\x00")),
		modelLoc:  gl.GetUniformLocation(program, gl.Str("model\x00")),
		texLoc:    gl.GetUniformLocation(program, gl.Str("tex\x00")),
		white:     WhiteTexture(),
		meshes:    make(map[*scene.Mesh]*GPUMesh),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.02, 0.02, 0.06, 1)
	return r, nil
}

// Load uploads every mesh used by s that is not on the GPU yet.
func (r *Renderer) Load(s *scene.Scene) error {
	for _, m := range s.Meshes() {
		if _, ok := r.meshes[m]; ok {
			continue
		}
		g, err := Upload(m)
		if err != nil {
			return fmt.Errorf("upload %s: %w", m.Name, err)
		}
		r.meshes[m] = g
	}
	return nil
}

// SetTexture binds texture to every instance of m. Zero restores plain white.
func (r *Renderer) SetTexture(m *scene.Mesh, texture uint32) {
	if g, ok := r.meshes[m]; ok {
		g.texture = texture
	}
}

// Resize updates the GL viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw clears the framebuffer and draws every loaded instance from cam.
func (r *Renderer) Draw(cam *camera.Camera, s *scene.Scene) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	vp := cam.ViewProjection()
	gl.UniformMatrix4fv(r.cameraLoc, 1, false, &vp[0])
	gl.Uniform1i(r.texLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, inst := range s.Instances {
		g, ok := r.meshes[inst.Mesh]
		if !ok {
			continue
		}

		model := inst.Model()
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])

		tex := g.texture
		if tex == 0 {
			tex = r.white
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)

		gl.BindVertexArray(g.vao)
		gl.DrawElements(g.mode, g.count, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Delete frees the program and all uploaded meshes.
func (r *Renderer) Delete() {
	for m, g := range r.meshes {
		g.Delete()
		delete(r.meshes, m)
	}
	gl.DeleteTextures(1, &r.white)
	gl.DeleteProgram(r.program)
}
