package scene

// The tile mesh is flat. The vertex stage scales and offsets it into
// place, then displaces Y by the heightmap; the fragment stage lights
// the surface with a fixed sun using screen-space derivative normals.

const terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform vec2 uOffset;
uniform float uScale;
uniform sampler2D uHeightmap;
uniform float uHeightScale;
uniform float uWorldSize;

out vec3 vWorldPos;

void main() {
	vec3 world = vec3(aPos.x * uScale + uOffset.x, 0.0, aPos.z * uScale + uOffset.y);
	vec2 uv = world.xz / uWorldSize + 0.5;
	world.y = textureLod(uHeightmap, uv, 0.0).r * uHeightScale;
	vWorldPos = world;
	gl_Position = uViewProj * vec4(world, 1.0);
}
`

const terrainFragmentShader = `
#version 410 core

in vec3 vWorldPos;
out vec4 FragColor;

uniform vec3 uColor;
uniform vec3 uLightDir;

void main() {
	vec3 normal = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));
	if (normal.y < 0.0) {
		normal = -normal;
	}
	float diff = max(dot(normal, -uLightDir), 0.0);
	vec3 lit = uColor * (0.25 + 0.75 * diff);
	FragColor = vec4(lit, 1.0);
}
`
