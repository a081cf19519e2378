package gpu

// Fullscreen quad passthrough shared by both pipelines.
const vertexShaderSource = `#version 330 core
layout(location = 0) in vec2 position;
out vec2 v_uv;
void main() {
    v_uv = position * 0.5 + 0.5;
    gl_Position = vec4(position, 0.0, 1.0);
}
`

// basicFragmentSource is the vertex-contraction fractal with single-light
// shading and a camera that orbits on its own.
const basicFragmentSource = `#version 330 core
out vec4 FragColor;
uniform vec2 u_resolution;
uniform float u_time;

mat3 rotateY(float angle) {
    float c = cos(angle);
    float s = sin(angle);
    return mat3(c, 0.0, s, 0.0, 1.0, 0.0, -s, 0.0, c);
}

// Distance estimate by contracting p toward the nearest tetrahedron vertex.
float sierpinskiSDF(vec3 p) {
    const int iterations = 12;
    const float scale = 2.0;
    vec3 a1 = vec3(1.0, 1.0, 1.0);
    vec3 a2 = vec3(-1.0, -1.0, 1.0);
    vec3 a3 = vec3(1.0, -1.0, -1.0);
    vec3 a4 = vec3(-1.0, 1.0, -1.0);
    vec3 c;
    float dist, d;
    int n = 0;

    for (n = 0; n < iterations; n++) {
        c = a1; dist = length(p - a1);
        d = length(p - a2); if (d < dist) { c = a2; dist = d; }
        d = length(p - a3); if (d < dist) { c = a3; dist = d; }
        d = length(p - a4); if (d < dist) { c = a4; dist = d; }
        p = scale * p - c * (scale - 1.0);
    }

    return length(p) * pow(scale, float(-n));
}

float rayMarch(vec3 ro, vec3 rd, out int steps, out float totalDist) {
    const int maxSteps = 256;
    const float maxDist = 20.0;
    const float epsilon = 0.001;

    float t = 0.0;
    steps = 0;

    for (int i = 0; i < maxSteps; i++) {
        vec3 pos = ro + rd * t;
        float dist = sierpinskiSDF(pos);

        if (dist < epsilon) {
            totalDist = t;
            return dist;
        }

        t += dist * 0.5; // relaxation
        steps++;

        if (t > maxDist) break;
    }

    totalDist = t;
    return -1.0;
}

vec3 calcNormal(vec3 p) {
    const float h = 0.0001;
    const vec2 k = vec2(1.0, -1.0);
    return normalize(
        k.xyy * sierpinskiSDF(p + k.xyy * h) +
        k.yyx * sierpinskiSDF(p + k.yyx * h) +
        k.yxy * sierpinskiSDF(p + k.yxy * h) +
        k.xxx * sierpinskiSDF(p + k.xxx * h)
    );
}

float calcAO(vec3 p, vec3 n) {
    float occ = 0.0;
    float sca = 1.0;
    for (int i = 0; i < 5; i++) {
        float h = 0.01 + 0.12 * float(i) / 4.0;
        float d = sierpinskiSDF(p + h * n);
        occ += (h - d) * sca;
        sca *= 0.95;
    }
    return clamp(1.0 - 3.0 * occ, 0.0, 1.0);
}

void main() {
    vec2 uv = (gl_FragCoord.xy - 0.5 * u_resolution) / u_resolution.y;

    vec3 ro = vec3(0.0, 0.0, 4.5);
    vec3 lookAt = vec3(0.0, 0.0, 0.0);

    vec3 forward = normalize(lookAt - ro);
    vec3 right = normalize(cross(vec3(0.0, 1.0, 0.0), forward));
    vec3 up = cross(forward, right);

    vec3 rd = normalize(uv.x * right + uv.y * up + 1.5 * forward);

    // Spin the whole rig, fractal stays at the origin.
    mat3 rot = rotateY(u_time * 0.3);
    rd = rot * rd;
    ro = rot * ro;

    int steps;
    float totalDist;
    float hit = rayMarch(ro, rd, steps, totalDist);

    vec3 color = vec3(0.0);

    if (hit > -0.5) {
        vec3 pos = ro + rd * totalDist;
        vec3 normal = calcNormal(pos);

        vec3 lightDir = normalize(vec3(0.5, 0.8, 0.3));
        float diff = max(dot(normal, lightDir), 0.0);

        vec3 viewDir = normalize(-rd);
        vec3 halfDir = normalize(lightDir + viewDir);
        float spec = pow(max(dot(normal, halfDir), 0.0), 32.0);

        float ao = calcAO(pos, normal);

        // March depth drives the hue, time keeps it cycling.
        float stepRatio = float(steps) / 256.0;
        vec3 baseColor = vec3(
            0.5 + 0.5 * sin(stepRatio * 6.28 + u_time),
            0.5 + 0.5 * sin(stepRatio * 6.28 + u_time + 2.09),
            0.5 + 0.5 * sin(stepRatio * 6.28 + u_time + 4.18)
        );

        vec3 ambient = vec3(0.1) * ao;
        vec3 diffuse = baseColor * diff;
        vec3 specular = vec3(1.0) * spec * 0.3;

        color = ambient + (diffuse + specular) * ao;

        float fog = exp(-totalDist * 0.12);
        color = mix(vec3(0.0), color, fog);
    }

    color = pow(color, vec3(0.4545));

    FragColor = vec4(color, 1.0);
}
`

// enhancedFragmentSource is the fold-based fractal with orbit-trap
// coloring, soft shadows, reflections, glow and post-processing.
const enhancedFragmentSource = `#version 330 core
in vec2 v_uv;
uniform vec2 u_resolution;
uniform float u_time;
uniform vec3 u_camPos;
uniform mat3 u_rotation;
uniform int u_colorPalette;
out vec4 fragColor;

const float PI = 3.14159265359;
const float TAU = 6.28318530718;
const int MAX_MARCH_STEPS = 200;
const float MAX_DIST = 50.0;
const float HIT_THRESHOLD = 0.0001;
const int FRACTAL_ITERATIONS = 14;
const float FRACTAL_SCALE = 2.0;

// Tetrahedral fold distance estimator, orbit traps gathered per iteration.
float sdSierpinski(vec3 p, out vec3 orbitTrap) {
    vec3 z = p;
    float r = 0.0;
    float dr = 1.0;
    orbitTrap = vec3(1e10);

    for (int n = 0; n < FRACTAL_ITERATIONS; n++) {
        if (z.x + z.y < 0.0) z.xy = -z.yx;
        if (z.x + z.z < 0.0) z.xz = -z.zx;
        if (z.y + z.z < 0.0) z.zy = -z.yz;

        // Extra fold for more detail.
        if (z.x - z.y < 0.0) z.xy = z.yx;

        z = z * FRACTAL_SCALE - 1.0 * (FRACTAL_SCALE - 1.0);
        dr = dr * FRACTAL_SCALE;

        float d = length(z);
        orbitTrap.x = min(orbitTrap.x, d);
        orbitTrap.y = min(orbitTrap.y, abs(z.x) + abs(z.y) + abs(z.z));
        orbitTrap.z = min(orbitTrap.z, dot(z, z));
    }

    r = length(z);
    return 0.5 * r / dr;
}

float map(vec3 p) {
    vec3 dummy;
    return sdSierpinski(p, dummy);
}

vec3 calcNormal(vec3 p) {
    const float h = 0.0001;
    const vec2 k = vec2(1, -1);
    return normalize(
        k.xyy * map(p + k.xyy * h) +
        k.yyx * map(p + k.yyx * h) +
        k.yxy * map(p + k.yxy * h) +
        k.xxx * map(p + k.xxx * h)
    );
}

float calcAO(vec3 p, vec3 n) {
    float ao = 0.0;
    float scale = 1.0;
    for (int i = 0; i < 5; i++) {
        float h = 0.01 + 0.12 * float(i) / 4.0;
        float d = map(p + n * h);
        ao += (h - d) * scale;
        scale *= 0.85;
    }
    return clamp(1.0 - 3.0 * ao, 0.0, 1.0);
}

float calcShadow(vec3 ro, vec3 rd, float mint, float maxt, float k) {
    float res = 1.0;
    float t = mint;
    for (int i = 0; i < 32; i++) {
        float h = map(ro + rd * t);
        if (h < HIT_THRESHOLD) return 0.0;
        res = min(res, k * h / t);
        t += h;
        if (t > maxt) break;
    }
    return clamp(res, 0.0, 1.0);
}

float rayMarch(vec3 ro, vec3 rd, out vec3 orbitTrap) {
    float t = 0.0;
    orbitTrap = vec3(1e10);

    for (int i = 0; i < MAX_MARCH_STEPS; i++) {
        vec3 p = ro + rd * t;
        vec3 trap;
        float d = sdSierpinski(p, trap);
        orbitTrap = min(orbitTrap, trap);

        if (d < HIT_THRESHOLD) return t;

        t += d * 0.6;

        if (t > MAX_DIST) break;
    }

    return -1.0;
}

vec3 getSkyColor(vec3 rd) {
    float grad = smoothstep(-0.5, 0.5, rd.y);
    vec3 sky = mix(
        vec3(0.02, 0.01, 0.05),
        vec3(0.1, 0.05, 0.2),
        grad
    );

    // Hashed starfield over three octaves.
    vec3 starCoord = rd * 200.0;
    float star = 0.0;
    for (int i = 0; i < 3; i++) {
        vec3 fl = floor(starCoord);
        vec3 fr = fract(starCoord);
        float h = fract(sin(dot(fl, vec3(12.9898, 78.233, 45.164))) * 43758.5453);
        float size = 0.02 * h;
        star += smoothstep(size, 0.0, length(fr - 0.5)) * h;
        starCoord *= 1.7;
    }
    sky += star * vec3(1.0, 0.9, 0.8) * 0.5;

    float nebula = sin(rd.x * 3.0 + u_time * 0.1) * cos(rd.y * 4.0) * sin(rd.z * 5.0);
    nebula = pow(max(nebula, 0.0), 3.0);
    sky += nebula * vec3(0.5, 0.2, 0.8) * 0.3;

    return sky;
}

vec3 getColorPalette(float t, int palette) {
    if (palette == 0) {
        return 0.5 + 0.5 * cos(TAU * (t + vec3(0.0, 0.33, 0.67)));
    } else if (palette == 1) {
        return 0.5 + 0.5 * cos(TAU * (t + vec3(0.0, 0.1, 0.2)));
    } else if (palette == 2) {
        return 0.5 + 0.5 * cos(TAU * (t + vec3(0.6, 0.5, 0.8)));
    } else {
        return 0.5 + 0.5 * cos(TAU * (t + vec3(0.15, 0.1, 0.0)));
    }
}

vec3 getEnhancedColor(vec3 orbitTrap, vec3 normal, float t) {
    float hue = orbitTrap.x * 0.4 + orbitTrap.y * 0.3 + u_time * 0.15;
    vec3 col1 = getColorPalette(hue, u_colorPalette);

    float hue2 = orbitTrap.z * 0.1 + u_time * 0.05;
    vec3 col2 = getColorPalette(hue2, (u_colorPalette + 1) % 4);

    float mixFactor = abs(sin(normal.x * 10.0 + normal.y * 7.0 + u_time * 0.5));
    vec3 col = mix(col1, col2, mixFactor * 0.3);

    return col;
}

vec3 getVolumetricGlow(vec3 ro, vec3 rd, float maxT) {
    vec3 glow = vec3(0.0);
    float t = 0.0;
    for (int i = 0; i < 32; i++) {
        vec3 p = ro + rd * t;
        float d = map(p);

        float glowFactor = 0.015 / (0.01 + d * d);
        vec3 orbitTrap;
        sdSierpinski(p, orbitTrap);
        vec3 glowCol = getColorPalette(orbitTrap.x * 0.5 + u_time * 0.2, u_colorPalette);
        glow += glowCol * glowFactor * 0.002;

        t += max(0.05, d * 0.5);
        if (t > maxT || t > MAX_DIST) break;
    }
    return glow;
}

vec3 traceReflection(vec3 ro, vec3 rd, vec3 normal, vec3 baseColor, float roughness) {
    vec3 reflectDir = reflect(rd, normal);

    vec3 orbitTrap;
    float t = rayMarch(ro + normal * 0.01, reflectDir, orbitTrap);

    if (t > 0.0) {
        vec3 p = ro + normal * 0.01 + reflectDir * t;
        vec3 n = calcNormal(p);
        vec3 reflColor = getEnhancedColor(orbitTrap, n, t);

        vec3 lightDir = normalize(vec3(1.0, 1.0, -1.0));
        float diff = max(dot(n, lightDir), 0.0);
        reflColor *= (0.3 + diff * 0.7);

        return reflColor;
    }

    return getSkyColor(reflectDir);
}

void main() {
    vec2 uv = (gl_FragCoord.xy - 0.5 * u_resolution) / u_resolution.y;

    // 2x2 supersampling.
    vec3 finalColor = vec3(0.0);

    for (int aa_x = 0; aa_x < 2; aa_x++) {
        for (int aa_y = 0; aa_y < 2; aa_y++) {
            vec2 offset = vec2(float(aa_x), float(aa_y)) / u_resolution.y * 0.5;
            vec2 uv_aa = uv + offset;

            vec3 ro = u_camPos;
            vec3 rd = normalize(vec3(uv_aa, -1.8));
            rd = u_rotation * rd;

            vec3 col = getSkyColor(rd);

            vec3 orbitTrap;
            float t = rayMarch(ro, rd, orbitTrap);

            vec3 glow = getVolumetricGlow(ro, rd, t > 0.0 ? t : MAX_DIST);

            if (t > 0.0) {
                vec3 p = ro + rd * t;
                vec3 normal = calcNormal(p);

                vec3 lightDir1 = normalize(vec3(1.0, 1.0, -1.0));
                vec3 lightDir2 = normalize(vec3(-1.0, 0.8, 0.5));
                vec3 lightDir3 = normalize(vec3(0.0, -1.0, 0.0));

                vec3 lightCol1 = vec3(1.0, 0.95, 0.9);
                vec3 lightCol2 = vec3(0.5, 0.6, 1.0);
                vec3 lightCol3 = vec3(0.8, 0.3, 0.9);

                float shadow1 = calcShadow(p, lightDir1, 0.02, 5.0, 8.0);
                float shadow2 = calcShadow(p, lightDir2, 0.02, 5.0, 8.0);

                float ao = calcAO(p, normal);

                float diff1 = max(dot(normal, lightDir1), 0.0) * shadow1;
                float diff2 = max(dot(normal, lightDir2), 0.0) * shadow2;
                float diff3 = max(dot(normal, lightDir3), 0.0) * 0.3;

                vec3 viewDir = -rd;
                vec3 halfDir1 = normalize(lightDir1 + viewDir);
                vec3 halfDir2 = normalize(lightDir2 + viewDir);
                float spec1 = pow(max(dot(normal, halfDir1), 0.0), 64.0) * shadow1;
                float spec2 = pow(max(dot(normal, halfDir2), 0.0), 32.0) * shadow2;

                float fresnel = pow(1.0 - max(dot(viewDir, normal), 0.0), 3.0);

                vec3 baseCol = getEnhancedColor(orbitTrap, normal, t);

                float metallic = 0.6;
                float roughness = 0.2;

                vec3 diffuse = baseCol * (
                    lightCol1 * diff1 * 0.7 +
                    lightCol2 * diff2 * 0.5 +
                    lightCol3 * diff3 * 0.3 +
                    vec3(0.05, 0.05, 0.1)
                ) * ao;

                vec3 specular = (
                    lightCol1 * spec1 * 1.5 +
                    lightCol2 * spec2 * 0.8
                );

                vec3 reflection = traceReflection(p, rd, normal, baseCol, roughness);

                col = mix(diffuse, reflection, fresnel * metallic * 0.7);
                col += specular * (1.0 + metallic * 2.0);

                float sss = pow(max(dot(-lightDir1, normal), 0.0), 3.0);
                col += baseCol * sss * 0.3;

                float fog = exp(-t * 0.04);
                col = mix(getSkyColor(rd), col, fog);
            }

            col += glow * 2.0;

            finalColor += col;
        }
    }

    finalColor /= 4.0;

    // Vignette.
    vec2 vignetteUV = gl_FragCoord.xy / u_resolution - 0.5;
    float vignette = 1.0 - dot(vignetteUV, vignetteUV) * 0.3;
    finalColor *= vignette;

    // Highlight bloom.
    float brightness = dot(finalColor, vec3(0.2126, 0.7152, 0.0722));
    if (brightness > 0.8) {
        finalColor += (finalColor - 0.8) * 0.3;
    }

    // Contrast and saturation grading.
    finalColor = pow(finalColor, vec3(0.9));
    finalColor = mix(vec3(dot(finalColor, vec3(0.299, 0.587, 0.114))), finalColor, 1.1);

    finalColor = pow(finalColor, vec3(0.4545));

    fragColor = vec4(finalColor, 1.0);
}
`
