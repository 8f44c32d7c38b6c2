package glgfx

const quadVertexSrc = `#version 330 core
layout (location = 0) in vec4 vertex; // <vec2 pos, vec2 tex>
out vec2 texCoords;

uniform mat4 projection;

void main() {
	gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
	texCoords = vertex.zw;
}
`

const quadFragmentSrc = `#version 330 core
in vec2 texCoords;
out vec4 fragColor;

uniform sampler2D text;
uniform vec3 color;

void main() {
	float alpha = texture(text, texCoords).r;
	fragColor = vec4(color, 1.0) * alpha;
}
`

const lineVertexSrc = `#version 330 core
layout (location = 0) in vec2 position;

uniform mat4 projection;

void main() {
	gl_Position = projection * vec4(position, 0.0, 1.0);
}
`

const lineFragmentSrc = `#version 330 core
out vec4 fragColor;

uniform vec3 color;

void main() {
	fragColor = vec4(color, 1.0);
}
`
