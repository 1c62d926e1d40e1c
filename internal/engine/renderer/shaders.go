package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vNormal = aNormal;
	vTexCoord = aTexCoord;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform vec4 uColor;
uniform bool uTextured;
uniform sampler2D uTexture;
uniform bool uLit;
uniform vec3 uAmbient;
uniform vec3 uLightDir;
uniform vec3 uLightColor;

out vec4 FragColor;

void main() {
	vec4 base = uTextured ? texture(uTexture, vTexCoord) : uColor;
	vec3 light = vec3(1.0);
	if (uLit) {
		float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
		light = uAmbient + uLightColor * diffuse;
	}
	FragColor = vec4(min(base.rgb * light, vec3(1.0)), base.a);
}
`

const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 aCorner;

uniform vec4 uRect; // x0, y0, x1, y1 in NDC

out vec2 vTexCoord;

void main() {
	gl_Position = vec4(mix(uRect.xy, uRect.zw, aCorner), 0.0, 1.0);
	vTexCoord = aCorner;
}
`

const overlayFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vTexCoord);
}
`
